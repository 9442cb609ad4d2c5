// Package store provides the in-memory ledger repository. All state is
// scoped to the process lifetime; there is deliberately no persistence.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/penny/internal/ledger"
)

// Store holds transactions and goals behind a single mutex so concurrent
// callers never observe a partially applied mutation and identifiers stay
// unique.
type Store struct {
	mu           sync.RWMutex
	transactions []*ledger.Transaction
	goals        []*ledger.Goal
}

func New() *Store {
	return &Store{}
}

// CreateTransaction assigns an id and creation time and inserts the
// transaction at the head of the log (most-recent-first for display).
func (s *Store) CreateTransaction(_ context.Context, tx *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.New()
	tx.CreatedAt = time.Now()
	s.transactions = append([]*ledger.Transaction{tx}, s.transactions...)

	return nil
}

func (s *Store) ListTransactions(_ context.Context) ([]*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]*ledger.Transaction, len(s.transactions))
	copy(txs, s.transactions)

	return txs, nil
}

// CreateGoal assigns an id and creation time and appends the goal.
func (s *Store) CreateGoal(_ context.Context, g *ledger.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = uuid.New()
	g.CreatedAt = time.Now()
	s.goals = append(s.goals, g)

	return nil
}

func (s *Store) ListGoals(_ context.Context) ([]*ledger.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]*ledger.Goal, len(s.goals))
	copy(goals, s.goals)

	return goals, nil
}

// AddToGoal adds deltaCents to the matching goal's current amount.
// Unknown ids are ignored and no other goal is touched.
func (s *Store) AddToGoal(_ context.Context, id uuid.UUID, deltaCents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.goals {
		if g.ID == id {
			g.CurrentCents += deltaCents
			return nil
		}
	}

	return nil
}
