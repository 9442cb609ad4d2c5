package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/penny/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/penny/internal/assistant"
	"github.com/MrJamesThe3rd/penny/internal/config"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/ledger/store"
	"github.com/MrJamesThe3rd/penny/internal/seed"
)

type model struct {
	engine        *assistant.Engine
	ledgerService *ledger.Service

	currentView View

	onboardingView view.OnboardingModel
	chatView       view.ChatModel
	dashboardView  view.DashboardModel
	goalsView      view.GoalsModel
}

type View int

const (
	ViewOnboarding View = 0
	ViewMenu       View = 1
	ViewChat       View = 2
	ViewDashboard  View = 3
	ViewGoals      View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ledgerService := ledger.NewService(store.New())
	chatLog := conversation.NewLog()
	responder := assistant.NewResponder(nil)
	engine := assistant.NewEngine(ledgerService, responder, chatLog, cfg.Assistant.TypingDelay)
	engine.SetUserName(cfg.Assistant.UserName)

	if cfg.Demo.Seed {
		if err := seed.Apply(context.Background(), ledgerService, chatLog); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	current := ViewMenu
	if engine.UserName() == "" {
		current = ViewOnboarding
	}

	return model{
		engine:         engine,
		ledgerService:  ledgerService,
		currentView:    current,
		onboardingView: view.NewOnboardingModel(),
		chatView:       view.NewChatModel(engine),
		dashboardView:  view.NewDashboardModel(ledgerService, cfg.Budget.MonthlyCents),
		goalsView:      view.NewGoalsModel(ledgerService),
	}
}

func (m model) Init() tea.Cmd {
	if m.currentView == ViewOnboarding {
		return m.onboardingView.Init()
	}

	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewChat
				m.chatView = view.NewChatModel(m.engine)

				return m, m.chatView.Init()
			case "2":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.ledgerService, m.dashboardView.BudgetCents())

				return m, m.dashboardView.Init()
			case "3":
				m.currentView = ViewGoals
				m.goalsView = view.NewGoalsModel(m.ledgerService)

				return m, m.goalsView.Init()
			}
		}
	case view.NameSetMsg:
		m.engine.SetUserName(msg.Name)
		m.currentView = ViewChat
		m.chatView = view.NewChatModel(m.engine)

		return m, m.chatView.Init()
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewOnboarding:
		var newModel tea.Model
		newModel, cmd = m.onboardingView.Update(msg)
		m.onboardingView = newModel.(view.OnboardingModel)
	case ViewChat:
		var newModel tea.Model
		newModel, cmd = m.chatView.Update(msg)
		m.chatView = newModel.(view.ChatModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewOnboarding:
		return m.onboardingView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Penny\n\n" +
				"1. Chat\n" +
				"2. Dashboard\n" +
				"3. Goals\n\n" +
				"q. Quit",
		)
	case ViewChat:
		return m.chatView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewGoals:
		return m.goalsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
