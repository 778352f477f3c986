// Package counter renders the character counter shown under a field.
// It is pure presentation: the owning widget resolves the numbers.
package counter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldline/fieldline/internal/ui/styles"
)

// Model is a current/max display with an active flag.
type Model struct {
	Value  string
	Max    string
	Active bool
}

// New creates a counter display. Max may be empty (no maximum shown) and
// is rendered verbatim, even when it is not numeric.
func New(value, max string, active bool) Model {
	return Model{Value: value, Max: max, Active: active}
}

// View renders "N" or "N / MAX". An inactive counter renders nothing.
func (m Model) View() string {
	if !m.Active {
		return ""
	}
	text := m.Value
	if m.Max != "" {
		text = m.Value + " / " + m.Max
	}
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(text)
}
