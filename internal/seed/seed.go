// Package seed loads the demo dataset so a fresh session has something to
// talk about. Enabled by default; disable with DEMO_SEED=false.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
)

const welcome = `Hello! 👋 I'm your finance assistant. I can log expenses, track your goals and share savings tips. Try telling me something like "spent 50 on lunch" or asking "how much have I spent?"`

// Apply inserts the demo transactions and goals and appends the welcome
// message. Transactions are inserted oldest first so the most recent ends
// up at the head of the log.
func Apply(ctx context.Context, svc *ledger.Service, log *conversation.Log) error {
	transactions := []ledger.CreateParams{
		{Description: "Monthly salary", AmountCents: 500000, Category: category.Salary, Type: ledger.TypeIncome},
		{Description: "Lunch delivery", AmountCents: 3500, Category: category.Food, Type: ledger.TypeExpense},
		{Description: "Uber to work", AmountCents: 2200, Category: category.Transport, Type: ledger.TypeExpense},
		{Description: "Netflix subscription", AmountCents: 3990, Category: category.Leisure, Type: ledger.TypeExpense},
	}

	for _, params := range transactions {
		if _, err := svc.AddTransaction(ctx, params); err != nil {
			return fmt.Errorf("seed transaction %q: %w", params.Description, err)
		}
	}

	goals := []ledger.GoalParams{
		{Title: "Emergency fund", TargetCents: 1500000, CurrentCents: 450000, Deadline: endOfYear(), Icon: "🛡️"},
		{Title: "Vacation trip", TargetCents: 800000, CurrentCents: 220000, Deadline: endOfYear().AddDate(0, 6, 0), Icon: "✈️"},
	}

	for _, params := range goals {
		if _, err := svc.AddGoal(ctx, params); err != nil {
			return fmt.Errorf("seed goal %q: %w", params.Title, err)
		}
	}

	log.Append(conversation.SenderAssistant, welcome)

	return nil
}

func endOfYear() time.Time {
	now := time.Now()
	return time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.Local)
}
