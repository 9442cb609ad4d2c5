package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/penny/internal/category"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context) ([]*Transaction, error)

	CreateGoal(ctx context.Context, g *Goal) error
	ListGoals(ctx context.Context) ([]*Goal, error)
	// AddToGoal adds deltaCents to the goal's current amount. Unknown ids
	// are ignored; no other goal may be touched.
	AddToGoal(ctx context.Context, id uuid.UUID, deltaCents int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Description string
	AmountCents int64
	Category    category.Category // Derived from the description when unset.
	Date        time.Time         // Zero value means now.
	Type        Type              // Defaults to TypeExpense.
}

type GoalParams struct {
	Title        string
	TargetCents  int64
	CurrentCents int64
	Deadline     time.Time
	Icon         string
}

// AddTransaction validates params and records a new transaction at the
// head of the log. A non-positive amount or empty description is rejected;
// admitting either would silently corrupt the balance invariant.
func (s *Service) AddTransaction(ctx context.Context, params CreateParams) (*Transaction, error) {
	desc := strings.TrimSpace(params.Description)
	if desc == "" {
		return nil, ErrEmptyDescription
	}

	if params.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	cat := params.Category
	if cat == "" {
		cat = category.Categorize(desc)
	} else if !category.Valid(cat) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}

	txType := params.Type
	if txType == "" {
		txType = TypeExpense
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &Transaction{
		Description: desc,
		AmountCents: params.AmountCents,
		Category:    cat,
		Date:        date,
		Type:        txType,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return tx, nil
}

// AddGoal records a new savings goal.
func (s *Service) AddGoal(ctx context.Context, params GoalParams) (*Goal, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	if params.TargetCents <= 0 || params.CurrentCents < 0 {
		return nil, ErrInvalidAmount
	}

	g := &Goal{
		Title:        title,
		TargetCents:  params.TargetCents,
		CurrentCents: params.CurrentCents,
		Deadline:     params.Deadline,
		Icon:         params.Icon,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	return g, nil
}

// ContributeToGoal adds deltaCents to the goal's current amount. A call
// with an unknown id is a no-op; the current amount is never clamped to
// the target.
func (s *Service) ContributeToGoal(ctx context.Context, id uuid.UUID, deltaCents int64) error {
	return s.repo.AddToGoal(ctx, id, deltaCents)
}

// Transactions returns the full log, most recent first.
func (s *Service) Transactions(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// Goals returns all goals in creation order.
func (s *Service) Goals(ctx context.Context) ([]*Goal, error) {
	return s.repo.ListGoals(ctx)
}

// Balance recomputes income minus expenses over the full log. Logs are
// small and session-bound, so derived state is never cached.
func (s *Service) Balance(ctx context.Context) (int64, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	return balanceOf(txs), nil
}

// Snapshot reads transactions and goals in one shot for read-only
// consumers such as the response generator.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return &Snapshot{Transactions: txs, Goals: goals}, nil
}

// Snapshot is a read-only view of ledger state. All aggregates are
// recomputed from the transaction log on each call.
type Snapshot struct {
	Transactions []*Transaction
	Goals        []*Goal
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Category   category.Category
	TotalCents int64
}

func (s *Snapshot) Balance() int64 {
	return balanceOf(s.Transactions)
}

func (s *Snapshot) TotalIncome() int64 {
	var sum int64

	for _, tx := range s.Transactions {
		if tx.Type == TypeIncome {
			sum += tx.AmountCents
		}
	}

	return sum
}

func (s *Snapshot) TotalExpenses() int64 {
	var sum int64

	for _, tx := range s.Transactions {
		if tx.Type == TypeExpense {
			sum += tx.AmountCents
		}
	}

	return sum
}

// ExpensesByCategory groups expense transactions by category and returns
// the totals sorted descending.
func (s *Snapshot) ExpensesByCategory() []CategoryTotal {
	totals := make(map[category.Category]int64)

	var order []category.Category

	for _, tx := range s.Transactions {
		if tx.Type != TypeExpense {
			continue
		}

		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}

		totals[tx.Category] += tx.AmountCents
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		result = append(result, CategoryTotal{Category: cat, TotalCents: totals[cat]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCents > result[j].TotalCents
	})

	return result
}

func balanceOf(txs []*Transaction) int64 {
	var balance int64

	for _, tx := range txs {
		if tx.Type == TypeIncome {
			balance += tx.AmountCents
		} else {
			balance -= tx.AmountCents
		}
	}

	return balance
}
