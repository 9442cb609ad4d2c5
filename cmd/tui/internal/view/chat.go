package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/penny/internal/assistant"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
)

const maxVisibleMessages = 12

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	timeStyle      = lipgloss.NewStyle().Faint(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type ChatModel struct {
	CommonModel
	engine *assistant.Engine

	input   textinput.Model
	spinner spinner.Model
	typing  bool
	status  string
}

func NewChatModel(engine *assistant.Engine) ChatModel {
	ti := textinput.New()
	ti.Placeholder = `Type or say "spent 50 on lunch"...`
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ChatModel{
		engine:  engine,
		input:   ti,
		spinner: s,
	}
}

func (m ChatModel) Title() string { return "Chat" }

func (m ChatModel) ShortHelp() string {
	return "Enter: send | ^S: spending | ^G: goals | ^T: tip | Esc: back"
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

type chatReplyMsg struct {
	err error
}

// sendCmd runs the utterance through the engine off the UI loop; the
// engine's typing delay happens inside, while the spinner shows.
func (m ChatModel) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.engine.Handle(ctx, text)

		return chatReplyMsg{err: err}
	}
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.typing = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		return m, nil

	case spinner.TickMsg:
		if !m.typing {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back

		case tea.KeyEnter:
			if m.typing {
				return m, nil
			}

			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}

			m.input.Reset()
			m.typing = true

			return m, tea.Batch(m.sendCmd(text), m.spinner.Tick)

		case tea.KeyCtrlS:
			m.input.SetValue("How much have I spent?")
			return m, nil

		case tea.KeyCtrlG:
			m.input.SetValue("Show my goals")
			return m, nil

		case tea.KeyCtrlT:
			m.input.SetValue("Give me a savings tip")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m ChatModel) View() string {
	var b strings.Builder

	msgs := m.engine.Log().Messages()
	if len(msgs) > maxVisibleMessages {
		msgs = msgs[len(msgs)-maxVisibleMessages:]
	}

	for _, msg := range msgs {
		b.WriteString(renderMessage(msg))
		b.WriteString("\n\n")
	}

	if m.typing {
		b.WriteString(m.spinner.View() + " typing...\n\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n" + timeStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func renderMessage(msg conversation.Message) string {
	who := assistantStyle.Render("Penny")
	if msg.Sender == conversation.SenderUser {
		who = userStyle.Render("You")
	}

	stamp := timeStyle.Render(msg.Timestamp.Format("15:04"))

	return fmt.Sprintf("%s %s\n%s", who, stamp, RenderEmphasis(msg.Content))
}
