package chat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/penny/internal/assistant"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
)

type Handler struct {
	engine *assistant.Engine
}

func NewHandler(engine *assistant.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.send)
	r.Get("/messages", h.messages)
	r.Put("/name", h.setName)
}

type sendRequest struct {
	Message string `json:"message"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.engine.Handle(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyUtterance) {
			http.Error(w, "message must not be empty", http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(reply)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	msgs := h.engine.Log().Messages()

	resp := make([]messageResponse, len(msgs))
	for i, msg := range msgs {
		resp[i] = toResponse(msg)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setNameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) setName(w http.ResponseWriter, r *http.Request) {
	var req setNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.engine.SetUserName(req.Name)
	w.WriteHeader(http.StatusNoContent)
}

type messageResponse struct {
	ID        uuid.UUID           `json:"id"`
	Content   string              `json:"content"`
	Sender    conversation.Sender `json:"sender"`
	Timestamp time.Time           `json:"timestamp"`
}

func toResponse(msg conversation.Message) messageResponse {
	return messageResponse{
		ID:        msg.ID,
		Content:   msg.Content,
		Sender:    msg.Sender,
		Timestamp: msg.Timestamp,
	}
}
