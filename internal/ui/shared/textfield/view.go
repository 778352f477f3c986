package textfield

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldline/fieldline/internal/ui/shared/counter"
	"github.com/fieldline/fieldline/internal/ui/styles"
)

// View composes the field: affixes and the native input inside the
// chrome, the counter resolved into the shell's details row.
func (m Model) View() string {
	st := m.chromeState()
	affix := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	inner := m.input.View()
	if m.cfg.DefaultContent != "" {
		inner = affix.Render(m.cfg.DefaultContent) + " " + inner
	}
	if m.cfg.Prefix != "" {
		inner = affix.Render(m.cfg.Prefix) + " " + inner
	}
	if m.cfg.Suffix != "" {
		inner = inner + " " + affix.Render(m.cfg.Suffix)
	}

	control := m.chrome.Render(inner, m.chromeWidth(), st)

	var counterView string
	if m.counterEnabled() {
		count, max := m.resolveCounter()
		active := m.cfg.PersistentCounter || m.fc.Focused()
		counterView = counter.New(strconv.Itoa(count), max, active).View()
	}

	return m.shell.Render(control, counterView, m.fc.Focused(), m.width)
}
