// Package assistant turns utterances into ledger mutations or canned
// replies. The Responder handles the non-transactional side: it resolves a
// conversational intent from keywords and answers from a read-only ledger
// snapshot.
package assistant

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/money"
)

type intent int

const (
	intentSummary intent = iota
	intentCategories
	intentGoals
	intentTip
	intentGreeting
	intentFallback
)

// intentRules is the ordered intent table: the first group with a keyword
// contained in the lower-cased utterance wins.
var intentRules = []struct {
	intent   intent
	keywords []string
}{
	{intentSummary, []string{"how much", "my spending", "my expenses", "balance"}},
	{intentCategories, []string{"categor", "where did", "breakdown"}},
	{intentGoals, []string{"goal", "objective", "target"}},
	{intentTip, []string{"tip", "advice", "save money", "economize"}},
	{intentGreeting, []string{"hello", "hey", "good morning", "good afternoon", "hi"}},
}

// Responder generates replies to non-transactional utterances. It is pure
// apart from tip selection, which draws from the injected random source.
type Responder struct {
	rand *rand.Rand
}

// NewResponder creates a Responder. A nil source gets a time-seeded one;
// tests inject a fixed seed for determinism.
func NewResponder(rnd *rand.Rand) *Responder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Responder{rand: rnd}
}

// Generate answers an utterance from the snapshot. It never mutates state
// and always returns a reply; unrecognized utterances get the fallback.
func (r *Responder) Generate(utterance string, snap *ledger.Snapshot, userName string) string {
	switch resolveIntent(utterance) {
	case intentSummary:
		return r.summary(snap)
	case intentCategories:
		return r.categories(snap)
	case intentGoals:
		return r.goals(snap)
	case intentTip:
		return tips[r.rand.Intn(len(tips))]
	case intentGreeting:
		return r.greeting(userName)
	default:
		return "🤔 I didn't quite get that. Try telling me something like \"spent 50 on lunch\", or ask \"how much have I spent?\""
	}
}

func resolveIntent(utterance string) intent {
	lower := strings.ToLower(utterance)

	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}

	return intentFallback
}

func (r *Responder) summary(snap *ledger.Snapshot) string {
	return fmt.Sprintf(
		"📊 So far you've spent **$%s**. Your current balance is **$%s**. Want a breakdown by category?",
		money.Format(snap.TotalExpenses()), money.Format(snap.Balance()),
	)
}

func (r *Responder) categories(snap *ledger.Snapshot) string {
	totals := snap.ExpensesByCategory()
	if len(totals) == 0 {
		return "📋 No expenses recorded yet. Tell me something like \"spent 50 on lunch\" to get started."
	}

	lines := make([]string, len(totals))
	for i, ct := range totals {
		lines[i] = fmt.Sprintf("%s %s: $%s", category.Icon(ct.Category), ct.Category, money.Format(ct.TotalCents))
	}

	return "📋 Your spending by category:\n\n" + strings.Join(lines, "\n")
}

func (r *Responder) goals(snap *ledger.Snapshot) string {
	if len(snap.Goals) == 0 {
		return "🎯 You don't have any goals yet. Want to create one? Tell me what you're saving for!"
	}

	lines := make([]string, len(snap.Goals))
	for i, g := range snap.Goals {
		lines[i] = fmt.Sprintf("%s %s: %d%% complete", g.Icon, g.Title, g.Progress())
	}

	return "🎯 Your goals:\n\n" + strings.Join(lines, "\n") + "\n\nKeep it up! 💪"
}

func (r *Responder) greeting(userName string) string {
	if userName != "" {
		return fmt.Sprintf("Hello, %s! 😊 How can I help with your finances today?", userName)
	}

	return "Hello! 😊 How can I help with your finances today?"
}
