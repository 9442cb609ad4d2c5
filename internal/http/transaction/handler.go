package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/penny/internal/category"
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
	r.Get("/summary", h.summary)
}

type createTransactionRequest struct {
	Description string            `json:"description"`
	AmountCents int64             `json:"amount_cents"`
	Category    category.Category `json:"category,omitempty"`
	Date        time.Time         `json:"date,omitempty"`
	Type        ledger.Type       `json:"type,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.AddTransaction(r.Context(), ledger.CreateParams{
		Description: req.Description,
		AmountCents: req.AmountCents,
		Category:    req.Category,
		Date:        req.Date,
		Type:        req.Type,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) ||
			errors.Is(err, ledger.ErrEmptyDescription) ||
			errors.Is(err, ledger.ErrUnknownCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Transactions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type categoryTotalResponse struct {
	Category   category.Category `json:"category"`
	Icon       string            `json:"icon"`
	TotalCents int64             `json:"total_cents"`
}

type summaryResponse struct {
	BalanceCents       int64                   `json:"balance_cents"`
	TotalIncomeCents   int64                   `json:"total_income_cents"`
	TotalExpensesCents int64                   `json:"total_expenses_cents"`
	ByCategory         []categoryTotalResponse `json:"by_category"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totals := snap.ExpensesByCategory()

	resp := summaryResponse{
		BalanceCents:       snap.Balance(),
		TotalIncomeCents:   snap.TotalIncome(),
		TotalExpensesCents: snap.TotalExpenses(),
		ByCategory:         make([]categoryTotalResponse, len(totals)),
	}
	for i, ct := range totals {
		resp.ByCategory[i] = categoryTotalResponse{
			Category:   ct.Category,
			Icon:       category.Icon(ct.Category),
			TotalCents: ct.TotalCents,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
