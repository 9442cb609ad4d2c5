// Package ledger owns the in-memory log of transactions and savings goals
// and the aggregates derived from them. State lives for the session only;
// durability is out of scope.
package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/penny/internal/category"
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrEmptyTitle       = errors.New("goal title must not be empty")
	ErrUnknownCategory  = errors.New("unknown category")
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction is a single recorded income or expense. Immutable once
// created.
type Transaction struct {
	ID          uuid.UUID
	Description string
	AmountCents int64 // Always positive; Type carries the sign.
	Category    category.Category
	Date        time.Time
	Type        Type
	CreatedAt   time.Time
}

// Goal is a savings target. CurrentCents only ever grows, via
// contributions; it is allowed to exceed TargetCents.
type Goal struct {
	ID           uuid.UUID
	Title        string
	TargetCents  int64
	CurrentCents int64
	Deadline     time.Time
	Icon         string
	CreatedAt    time.Time
}

// Progress returns the goal's completion percentage, truncated to a whole
// percent.
func (g *Goal) Progress() int {
	if g.TargetCents <= 0 {
		return 0
	}

	return int(g.CurrentCents * 100 / g.TargetCents)
}
