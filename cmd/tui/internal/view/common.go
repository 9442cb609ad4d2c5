package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface every TUI screen implements.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// NameSetMsg is emitted when onboarding captures the display name.
type NameSetMsg struct {
	Name string
}
