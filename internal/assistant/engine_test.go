package assistant_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/penny/internal/assistant"
	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/ledger/store"
)

func newEngine(t *testing.T, delay time.Duration) (*assistant.Engine, *ledger.Service) {
	t.Helper()

	svc := ledger.NewService(store.New())
	responder := assistant.NewResponder(rand.New(rand.NewSource(1)))

	return assistant.NewEngine(svc, responder, conversation.NewLog(), delay), svc
}

func TestEngine_HandleExpense(t *testing.T) {
	ctx := context.Background()
	engine, svc := newEngine(t, 0)

	reply, err := engine.Handle(ctx, "spent 50 on lunch")
	require.NoError(t, err)

	assert.Equal(t, conversation.SenderAssistant, reply.Sender)
	assert.Contains(t, reply.Content, "✅ Logged!")
	assert.Contains(t, reply.Content, "**lunch**")
	assert.Contains(t, reply.Content, "$50.00")
	assert.Contains(t, reply.Content, "Your current balance: -$50.00")

	txs, err := svc.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "lunch", txs[0].Description)
	assert.Equal(t, int64(5000), txs[0].AmountCents)
	assert.Equal(t, category.Food, txs[0].Category)
	assert.Equal(t, ledger.TypeExpense, txs[0].Type)
}

func TestEngine_HandleFallback(t *testing.T) {
	ctx := context.Background()
	engine, svc := newEngine(t, 0)

	reply, err := engine.Handle(ctx, "xyz")
	require.NoError(t, err)

	assert.Contains(t, reply.Content, "didn't quite get that")

	txs, err := svc.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestEngine_HandleAppendsBothSides(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t, 0)

	_, err := engine.Handle(ctx, "how much have I spent?")
	require.NoError(t, err)

	msgs := engine.Log().Messages()
	require.Len(t, msgs, 2)

	assert.Equal(t, conversation.SenderUser, msgs[0].Sender)
	assert.Equal(t, "how much have I spent?", msgs[0].Content)
	assert.Equal(t, conversation.SenderAssistant, msgs[1].Sender)
}

func TestEngine_HandleEmptyUtterance(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t, 0)

	_, err := engine.Handle(ctx, "   ")
	assert.ErrorIs(t, err, assistant.ErrEmptyUtterance)
	assert.Zero(t, engine.Log().Len())
}

func TestEngine_GreetingUsesUserName(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine(t, 0)
	engine.SetUserName("  Ana ")

	assert.Equal(t, "Ana", engine.UserName())

	reply, err := engine.Handle(ctx, "hello")
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "Hello, Ana!")
}

// Cancelling during the typing delay aborts the reply, but the expense is
// already recorded.
func TestEngine_CancelledDuringDelay(t *testing.T) {
	engine, svc := newEngine(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Handle(ctx, "spent 50 on lunch")
	assert.ErrorIs(t, err, context.Canceled)

	txs, err := svc.Transactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}
