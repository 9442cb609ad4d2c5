package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/money"
)

// Contribution shortcuts, in cents.
const (
	contributeSmall = 10000
	contributeLarge = 50000
)

var goalIcons = []string{"🎯", "✈️", "🏠", "🚗", "📱", "💍", "🎓", "🛡️", "💰", "🏖️"}

type goalsState int

const (
	goalsStateBrowse goalsState = iota
	goalsStateAdd
)

type GoalsModel struct {
	CommonModel
	ledgerService *ledger.Service

	state    goalsState
	goals    []*ledger.Goal
	cursor   int
	form     *huh.Form
	loading  bool
	status   string
	err      error

	// Form bindings
	formTitle  string
	formTarget string
	formIcon   string
}

func NewGoalsModel(svc *ledger.Service) GoalsModel {
	return GoalsModel{
		ledgerService: svc,
		loading:       true,
	}
}

func (m GoalsModel) Title() string { return "Goals" }

func (m GoalsModel) ShortHelp() string {
	if m.state == goalsStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "↑/↓: select | 1: +$100 | 5: +$500 | a: add goal | r: refresh | Esc: back"
}

type goalsLoadedMsg struct {
	goals []*ledger.Goal
	err   error
}

type goalSavedMsg struct {
	err error
}

func (m GoalsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		goals, err := m.ledgerService.Goals(ctx)

		return goalsLoadedMsg{goals: goals, err: err}
	}
}

func (m GoalsModel) contributeCmd(g *ledger.Goal, cents int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return goalSavedMsg{err: m.ledgerService.ContributeToGoal(ctx, g.ID, cents)}
	}
}

func (m GoalsModel) addGoalCmd(title, target, icon string) tea.Cmd {
	return func() tea.Msg {
		cents, err := parseTargetCents(target)
		if err != nil {
			return goalSavedMsg{err: err}
		}

		ctx, cancel := OpCtx()
		defer cancel()

		_, err = m.ledgerService.AddGoal(ctx, ledger.GoalParams{
			Title:       title,
			TargetCents: cents,
			Icon:        icon,
		})

		return goalSavedMsg{err: err}
	}
}

func parseTargetCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return 0, fmt.Errorf("invalid target amount %q", s)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func (m GoalsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.goals = msg.goals

		if m.cursor >= len(m.goals) {
			m.cursor = 0
		}

		return m, nil

	case goalSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = goalsStateBrowse
		m.form = nil

		return m, m.loadCmd()
	}

	if m.state == goalsStateAdd {
		return m.updateAdd(msg)
	}

	return m.updateBrowse(msg)
}

func (m GoalsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.goals)-1 {
			m.cursor++
		}
	case "1":
		if m.cursor < len(m.goals) {
			return m, m.contributeCmd(m.goals[m.cursor], contributeSmall)
		}
	case "5":
		if m.cursor < len(m.goals) {
			return m, m.contributeCmd(m.goals[m.cursor], contributeLarge)
		}
	case "a":
		m.state = goalsStateAdd
		m.formTitle = ""
		m.formTarget = ""
		m.formIcon = goalIcons[0]
		m.form = m.buildAddForm()

		return m, m.form.Init()
	case "r":
		m.loading = true
		return m, m.loadCmd()
	}

	return m, nil
}

func (m GoalsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = goalsStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.addGoalCmd(
			m.form.GetString("title"),
			m.form.GetString("target"),
			m.form.GetString("icon"),
		)
	}

	return m, cmd
}

func (m *GoalsModel) buildAddForm() *huh.Form {
	iconOptions := make([]huh.Option[string], len(goalIcons))
	for i, icon := range goalIcons {
		iconOptions[i] = huh.NewOption(icon, icon)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("What are you saving for?").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("target").
				Title("Target amount").
				Placeholder("8000.00").
				Value(&m.formTarget),

			huh.NewSelect[string]().
				Key("icon").
				Title("Icon").
				Options(iconOptions...).
				Value(&m.formIcon),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m GoalsModel) View() string {
	if m.loading {
		return "Loading..."
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}

	if m.state == goalsStateAdd {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("My goals") + "\n\n")

	if len(m.goals) == 0 {
		b.WriteString(faintStyle.Render("No goals yet. Press 'a' to create one.") + "\n")
	}

	for i, g := range m.goals {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		b.WriteString(fmt.Sprintf(
			"%s%s %s  $%s of $%s\n  %s %d%%  (by %s)\n\n",
			marker, g.Icon, g.Title,
			money.Format(g.CurrentCents), money.Format(g.TargetCents),
			progressBar(g.Progress()), g.Progress(), FormatDate(g.Deadline),
		))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
