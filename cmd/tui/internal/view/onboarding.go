package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// OnboardingModel asks for the display name on first run.
type OnboardingModel struct {
	CommonModel

	form *huh.Form
	name string
}

func NewOnboardingModel() OnboardingModel {
	m := OnboardingModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Hi! I'm Penny, your finance assistant. 👋").
				Description("What should I call you?").
				Value(&m.name),
		),
	).WithWidth(50).WithShowHelp(false)

	return m
}

func (m OnboardingModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		name := strings.TrimSpace(m.form.GetString("name"))

		return m, func() tea.Msg {
			return NameSetMsg{Name: name}
		}
	}

	return m, cmd
}

func (m OnboardingModel) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
}
