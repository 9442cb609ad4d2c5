package goal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/penny/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/{id}/contributions", h.contribute)
}

type createGoalRequest struct {
	Title        string    `json:"title"`
	TargetCents  int64     `json:"target_cents"`
	CurrentCents int64     `json:"current_cents,omitempty"`
	Deadline     time.Time `json:"deadline"`
	Icon         string    `json:"icon,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	icon := req.Icon
	if icon == "" {
		icon = "🎯"
	}

	g, err := h.svc.AddGoal(r.Context(), ledger.GoalParams{
		Title:        req.Title,
		TargetCents:  req.TargetCents,
		CurrentCents: req.CurrentCents,
		Deadline:     req.Deadline,
		Icon:         icon,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) || errors.Is(err, ledger.ErrEmptyTitle) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Goals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type contributeRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

// contribute adds to a goal's current amount. Unknown goal ids are a
// deliberate no-op, mirroring the core's contract, so the response is 204
// either way.
func (h *Handler) contribute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ContributeToGoal(r.Context(), id, req.AmountCents); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type goalResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	TargetCents  int64     `json:"target_cents"`
	CurrentCents int64     `json:"current_cents"`
	Progress     int       `json:"progress"`
	Deadline     time.Time `json:"deadline"`
	Icon         string    `json:"icon"`
	CreatedAt    time.Time `json:"created_at"`
}

func toResponse(g *ledger.Goal) goalResponse {
	return goalResponse{
		ID:           g.ID,
		Title:        g.Title,
		TargetCents:  g.TargetCents,
		CurrentCents: g.CurrentCents,
		Progress:     g.Progress(),
		Deadline:     g.Deadline,
		Icon:         g.Icon,
		CreatedAt:    g.CreatedAt,
	}
}
