package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/money"
	"github.com/MrJamesThe3rd/penny/internal/parser"
)

var ErrEmptyUtterance = errors.New("utterance must not be empty")

// Engine processes one utterance end to end: parse, record or respond,
// then append the assistant's reply to the conversation. Utterances are
// handled strictly sequentially by each caller; ledger mutations are
// serialized by the store.
type Engine struct {
	ledger      *ledger.Service
	responder   *Responder
	log         *conversation.Log
	typingDelay time.Duration

	mu       sync.RWMutex
	userName string
}

// NewEngine wires the core together. typingDelay models the assistant
// composing a reply; it runs after any ledger mutation and only delays
// when the reply becomes visible.
func NewEngine(svc *ledger.Service, responder *Responder, log *conversation.Log, typingDelay time.Duration) *Engine {
	return &Engine{
		ledger:      svc,
		responder:   responder,
		log:         log,
		typingDelay: typingDelay,
	}
}

// Log returns the conversation log the engine appends to.
func (e *Engine) Log() *conversation.Log {
	return e.log
}

// SetUserName stores the display name used in greetings.
func (e *Engine) SetUserName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.userName = strings.TrimSpace(name)
}

func (e *Engine) UserName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.userName
}

// Handle records the utterance as a user message and produces the
// assistant's reply. When the utterance parses as an expense it is
// recorded in the ledger and confirmed; otherwise the responder answers
// from a snapshot. Every utterance terminates in a reply.
func (e *Engine) Handle(ctx context.Context, text string) (conversation.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return conversation.Message{}, ErrEmptyUtterance
	}

	e.log.Append(conversation.SenderUser, text)

	reply, err := e.reply(ctx, text)
	if err != nil {
		return conversation.Message{}, err
	}

	// The mutation is already applied; the delay only postpones the reply.
	if err := e.wait(ctx); err != nil {
		return conversation.Message{}, err
	}

	return e.log.Append(conversation.SenderAssistant, reply), nil
}

func (e *Engine) reply(ctx context.Context, text string) (string, error) {
	res, ok := parser.ParseExpense(text)
	if !ok {
		snap, err := e.ledger.Snapshot(ctx)
		if err != nil {
			return "", fmt.Errorf("snapshot ledger: %w", err)
		}

		return e.responder.Generate(text, snap, e.UserName()), nil
	}

	cat := category.Categorize(res.Description)

	tx, err := e.ledger.AddTransaction(ctx, ledger.CreateParams{
		Description: res.Description,
		AmountCents: res.AmountCents,
		Category:    cat,
		Type:        ledger.TypeExpense,
	})
	if err != nil {
		return "", fmt.Errorf("record expense: %w", err)
	}

	balance, err := e.ledger.Balance(ctx)
	if err != nil {
		return "", fmt.Errorf("compute balance: %w", err)
	}

	return fmt.Sprintf(
		"✅ Logged! %s **%s** - %s (%s)\n\nYour current balance: %s",
		category.Icon(tx.Category), tx.Description, money.FormatUSD(tx.AmountCents), tx.Category, money.FormatUSD(balance),
	), nil
}

func (e *Engine) wait(ctx context.Context) error {
	if e.typingDelay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(e.typingDelay):
		return nil
	}
}
