// Package inputshell renders the outer decoration around a form
// control: prepend/append icons, a loading indicator, and the details
// row holding messages and the counter slot.
package inputshell

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/fieldline/fieldline/internal/ui/styles"
)

// Options configures the shell. Fields are read-only snapshots.
type Options struct {
	// ID identifies the control. Generated when empty.
	ID string

	PrependIcon string
	AppendIcon  string

	// Hint is shown in the details row while the control is focused, or
	// always when PersistentHint is set. Error messages take precedence.
	Hint           string
	PersistentHint bool

	// ErrorMessages puts the control in its error state. At most
	// MaxErrors are displayed (default 1).
	ErrorMessages []string
	MaxErrors     int

	Disabled bool
	ReadOnly bool

	// Loading replaces the prepend icon with a spinner.
	Loading bool

	// HideDetails suppresses the details row entirely.
	HideDetails bool
}

// Model holds the shell state.
type Model struct {
	opts Options
	id   string
	spin spinner.Model
}

// New creates a shell. A missing ID is generated so the control can be
// addressed by messages.
func New(opts Options) Model {
	id := opts.ID
	if id == "" {
		id = "input-" + uuid.NewString()[:8]
	}
	if opts.MaxErrors == 0 {
		opts.MaxErrors = 1
	}
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(styles.PrimaryColor)
	return Model{opts: opts, id: id, spin: sp}
}

// ID returns the control's identifier.
func (m Model) ID() string {
	return m.id
}

// Options returns the configured options.
func (m Model) Options() Options {
	return m.opts
}

// Error reports whether the shell is in its error state.
func (m Model) Error() bool {
	return len(m.opts.ErrorMessages) > 0
}

// Dirty resolves the shell's dirtiness signal: the control has content
// independent of focus, or the owner forced it.
func Dirty(hasValue, override bool) bool {
	return hasValue || override
}

// PrependWidth is the horizontal space taken by the prepend icon (or
// the spinner standing in for it) including its separator.
func (m Model) PrependWidth() int {
	if m.opts.Loading {
		return 2
	}
	if m.opts.PrependIcon == "" {
		return 0
	}
	return lipgloss.Width(m.opts.PrependIcon) + 1
}

// AppendWidth is the horizontal space taken by the append icon
// including its separator.
func (m Model) AppendWidth() int {
	if m.opts.AppendIcon == "" {
		return 0
	}
	return lipgloss.Width(m.opts.AppendIcon) + 1
}

// Init starts the loading spinner when needed.
func (m Model) Init() tea.Cmd {
	if !m.opts.Loading {
		return nil
	}
	return m.spin.Tick
}

// Update advances the loading spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.opts.Loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// Messages returns the detail messages to display. Error messages win
// over the hint; the hint shows while focused or when persistent.
func (m Model) Messages(focused bool) []string {
	if len(m.opts.ErrorMessages) > 0 {
		n := m.opts.MaxErrors
		if n > len(m.opts.ErrorMessages) {
			n = len(m.opts.ErrorMessages)
		}
		return m.opts.ErrorMessages[:n]
	}
	if m.opts.Hint != "" && (m.opts.PersistentHint || focused) {
		return []string{m.opts.Hint}
	}
	return nil
}

// Render draws icons + control, then the details row with messages on
// the left and the counter on the right.
func (m Model) Render(control, counterView string, focused bool, width int) string {
	row := control

	prepend := m.opts.PrependIcon
	if m.opts.Loading {
		prepend = m.spin.View()
	}
	if prepend != "" {
		icon := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(prepend)
		row = lipgloss.JoinHorizontal(lipgloss.Center, icon+" ", row)
	}
	if m.opts.AppendIcon != "" {
		icon := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(m.opts.AppendIcon)
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " "+icon)
	}

	details := m.renderDetails(counterView, focused, width)
	if details == "" {
		return row
	}
	return row + "\n" + details
}

func (m Model) renderDetails(counterView string, focused bool, width int) string {
	if m.opts.HideDetails {
		return ""
	}

	msgs := m.Messages(focused)
	if len(msgs) == 0 && counterView == "" {
		return ""
	}

	msgStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	if m.Error() {
		msgStyle = msgStyle.Foreground(styles.ErrorColor)
	}
	left := msgStyle.Render(strings.Join(msgs, " · "))

	gap := width - lipgloss.Width(left) - lipgloss.Width(counterView) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + counterView
}
