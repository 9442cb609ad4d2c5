package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
)

type transactionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	AmountCents int64             `json:"amount_cents"`
	Category    category.Category `json:"category"`
	Icon        string            `json:"icon"`
	Date        time.Time         `json:"date"`
	Type        ledger.Type       `json:"type"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		AmountCents: tx.AmountCents,
		Category:    tx.Category,
		Icon:        category.Icon(tx.Category),
		Date:        tx.Date,
		Type:        tx.Type,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
