package view

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/penny/internal/money"
)

const opTimeout = 5 * time.Second

// FormatAmount formats an amount stored as cents into a human-readable string.
func FormatAmount(cents int64) string {
	return money.FormatUSD(cents)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// OpCtx returns a context with a standard timeout for engine operations.
func OpCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

var emphasisStyle = lipgloss.NewStyle().Bold(true)

// RenderEmphasis renders **bold** spans in message content. Segments at
// odd indexes after splitting on "**" are the emphasized ones.
func RenderEmphasis(content string) string {
	parts := strings.Split(content, "**")

	var b strings.Builder

	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(emphasisStyle.Render(part))
		} else {
			b.WriteString(part)
		}
	}

	return b.String()
}
