package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/penny/internal/category"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/money"
)

const recentTransactionCount = 5

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type DashboardModel struct {
	CommonModel
	ledgerService *ledger.Service
	budgetCents   int64

	snap    *ledger.Snapshot
	loading bool
	err     error
}

func NewDashboardModel(svc *ledger.Service, budgetCents int64) DashboardModel {
	return DashboardModel{
		ledgerService: svc,
		budgetCents:   budgetCents,
		loading:       true,
	}
}

// BudgetCents exposes the configured monthly budget so the root model can
// rebuild the view on re-entry.
func (m DashboardModel) BudgetCents() int64 { return m.budgetCents }

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "r: refresh | Esc: back" }

type dashboardLoadedMsg struct {
	snap *ledger.Snapshot
	err  error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		snap, err := m.ledgerService.Snapshot(ctx)

		return dashboardLoadedMsg{snap: snap, err: err}
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.snap = msg.snap
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return "Loading..."
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}

	var b strings.Builder

	b.WriteString(m.balanceCard())
	b.WriteString("\n\n")
	b.WriteString(m.budgetSection())
	b.WriteString("\n\n")
	b.WriteString(m.categorySection())
	b.WriteString("\n\n")
	b.WriteString(m.recentSection())
	b.WriteString("\n\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m DashboardModel) balanceCard() string {
	content := fmt.Sprintf(
		"💳 Current balance\n%s\n\n↑ Income  %s   ↓ Expenses  %s",
		headerStyle.Render(FormatAmount(m.snap.Balance())),
		FormatAmount(m.snap.TotalIncome()),
		FormatAmount(m.snap.TotalExpenses()),
	)

	return cardStyle.Render(content)
}

func (m DashboardModel) budgetSection() string {
	if m.budgetCents <= 0 {
		return ""
	}

	spent := m.snap.TotalExpenses()

	pct := spent * 100 / m.budgetCents
	if pct > 100 {
		pct = 100
	}

	return fmt.Sprintf(
		"%s\n%s  %s of %s (%d%%)",
		headerStyle.Render("Monthly budget"),
		progressBar(int(pct)),
		FormatAmount(spent), FormatAmount(m.budgetCents), pct,
	)
}

func (m DashboardModel) categorySection() string {
	totals := m.snap.ExpensesByCategory()
	if len(totals) == 0 {
		return faintStyle.Render("No expenses yet.")
	}

	lines := make([]string, len(totals))
	for i, ct := range totals {
		lines[i] = fmt.Sprintf("%s %-10s %s", category.Icon(ct.Category), ct.Category, FormatAmount(ct.TotalCents))
	}

	return headerStyle.Render("Spending by category") + "\n" + strings.Join(lines, "\n")
}

func (m DashboardModel) recentSection() string {
	txs := m.snap.Transactions
	if len(txs) > recentTransactionCount {
		txs = txs[:recentTransactionCount]
	}

	if len(txs) == 0 {
		return ""
	}

	lines := make([]string, len(txs))

	for i, tx := range txs {
		lines[i] = fmt.Sprintf("%s  %s %s  %s",
			FormatDate(tx.Date), category.Icon(tx.Category), tx.Description,
			money.FormatSigned(tx.AmountCents, tx.Type == ledger.TypeIncome))
	}

	return headerStyle.Render("Recent transactions") + "\n" + strings.Join(lines, "\n")
}

func progressBar(pct int) string {
	const width = 20

	filled := pct * width / 100
	if filled > width {
		filled = width
	}

	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}
