package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/ledger/store"
)

func TestStore_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	first := &ledger.Transaction{Description: "Lunch", AmountCents: 3500, Category: category.Food, Type: ledger.TypeExpense}
	second := &ledger.Transaction{Description: "Uber", AmountCents: 2200, Category: category.Transport, Type: ledger.TypeExpense}

	require.NoError(t, s.CreateTransaction(ctx, first))
	require.NoError(t, s.CreateTransaction(ctx, second))

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	txs, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// Most recent first.
	assert.Equal(t, "Uber", txs[0].Description)
	assert.Equal(t, "Lunch", txs[1].Description)
}

func TestStore_ListTransactionsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	require.NoError(t, s.CreateTransaction(ctx, &ledger.Transaction{Description: "Lunch", AmountCents: 3500}))

	txs, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	txs[0] = nil

	again, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.NotNil(t, again[0])
}

func TestStore_AddToGoal(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	g := &ledger.Goal{Title: "Vacation trip", TargetCents: 800000}
	other := &ledger.Goal{Title: "Emergency fund", TargetCents: 1500000, CurrentCents: 450000}

	require.NoError(t, s.CreateGoal(ctx, g))
	require.NoError(t, s.CreateGoal(ctx, other))

	// Contributions accumulate.
	require.NoError(t, s.AddToGoal(ctx, g.ID, 10000))
	require.NoError(t, s.AddToGoal(ctx, g.ID, 50000))

	goals, err := s.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	assert.Equal(t, int64(60000), goals[0].CurrentCents)
	assert.Equal(t, int64(450000), goals[1].CurrentCents)
}

func TestStore_AddToGoal_UnknownID(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	g := &ledger.Goal{Title: "Vacation trip", TargetCents: 800000, CurrentCents: 220000}
	require.NoError(t, s.CreateGoal(ctx, g))

	require.NoError(t, s.AddToGoal(ctx, uuid.New(), 10000))

	goals, err := s.ListGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(220000), goals[0].CurrentCents)
}

func TestStore_CreateGoalPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	require.NoError(t, s.CreateGoal(ctx, &ledger.Goal{Title: "Emergency fund", TargetCents: 1500000}))
	require.NoError(t, s.CreateGoal(ctx, &ledger.Goal{Title: "Vacation trip", TargetCents: 800000}))

	goals, err := s.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	assert.Equal(t, "Emergency fund", goals[0].Title)
	assert.Equal(t, "Vacation trip", goals[1].Title)
}
