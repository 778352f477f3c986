// Package fieldchrome renders the visual treatment around a form
// control: border, underline or fill, a floating label, inner
// affordances, and a clear control. It also classifies mouse positions
// into zones so the owning widget can route clicks.
package fieldchrome

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fieldline/fieldline/internal/ui/styles"
)

// Variant selects the visual treatment of the chrome.
type Variant string

const (
	VariantOutlined   Variant = "outlined"
	VariantUnderlined Variant = "underlined"
	VariantFilled     Variant = "filled"
	VariantPlain      Variant = "plain"
)

// DefaultClearIcon is the clear affordance shown for clearable fields.
const DefaultClearIcon = "✕"

// Options configures the chrome. Fields are read-only snapshots; the
// owner rebuilds the model to change them.
type Options struct {
	Variant      Variant // default outlined
	Label        string
	PrependInner string
	AppendInner  string
	Clearable    bool
	ClearIcon    string // default DefaultClearIcon
}

// State carries the flags the owner resolves each render.
type State struct {
	Focused  bool
	Active   bool
	Dirty    bool
	Disabled bool
	Error    bool
}

// Zone classifies a position inside the rendered chrome.
type Zone int

const (
	ZoneOutside Zone = iota
	ZoneContent
	ZonePrependInner
	ZoneClear
	ZoneAppendInner
)

// Model holds the chrome configuration.
type Model struct {
	opts Options
}

// New creates a chrome renderer with defaults applied.
func New(opts Options) Model {
	if opts.Variant == "" {
		opts.Variant = VariantOutlined
	}
	if opts.ClearIcon == "" {
		opts.ClearIcon = DefaultClearIcon
	}
	return Model{opts: opts}
}

// Options returns the configured options.
func (m Model) Options() Options {
	return m.opts
}

// floatLabel decides where the label sits: it floats onto the chrome
// while the field is active or has content, and rests in the content
// area otherwise.
func (m Model) floatLabel(st State) bool {
	return st.Active || st.Dirty
}

func (m Model) showClear(st State) bool {
	return m.opts.Clearable && st.Dirty && !st.Disabled
}

// layout describes the cell ranges of the chrome's interactive parts.
// Ranges are [start, end) in absolute columns; an empty range means the
// part is absent.
type layout struct {
	edge       int // border cells on each side (outlined only)
	contentRow int

	prependStart, prependEnd int
	contentStart, contentEnd int
	clearStart, clearEnd     int
	appendStart, appendEnd   int
}

func (m Model) layout(width int, st State) layout {
	var lay layout
	if m.opts.Variant == VariantOutlined {
		lay.edge = 1
		lay.contentRow = 1
	} else if m.opts.Label != "" && m.floatLabel(st) {
		lay.contentRow = 1
	}

	x := lay.edge + 1
	if m.opts.PrependInner != "" {
		w := lipgloss.Width(m.opts.PrependInner)
		lay.prependStart, lay.prependEnd = x, x+w
		x += w + 1
	}

	right := width - lay.edge - 1
	if m.opts.AppendInner != "" {
		w := lipgloss.Width(m.opts.AppendInner)
		lay.appendStart, lay.appendEnd = right-w, right
		right = lay.appendStart - 1
	}
	if m.showClear(st) {
		w := lipgloss.Width(m.opts.ClearIcon)
		lay.clearStart, lay.clearEnd = right-w, right
		right = lay.clearStart - 1
	}

	lay.contentStart, lay.contentEnd = x, right
	return lay
}

// ContentWidth returns the columns available to the slotted content.
func (m Model) ContentWidth(width int, st State) int {
	lay := m.layout(width, st)
	w := lay.contentEnd - lay.contentStart
	if w < 1 {
		w = 1
	}
	return w
}

// Height returns the number of rows the chrome occupies.
func (m Model) Height(st State) int {
	switch m.opts.Variant {
	case VariantOutlined:
		return 3
	case VariantUnderlined, VariantFilled:
		if m.opts.Label != "" && m.floatLabel(st) {
			return 3
		}
		return 2
	default:
		if m.opts.Label != "" && m.floatLabel(st) {
			return 2
		}
		return 1
	}
}

// HitTest classifies a chrome-local position into a zone.
func (m Model) HitTest(x, y, width int, st State) Zone {
	if x < 0 || x >= width {
		return ZoneOutside
	}
	lay := m.layout(width, st)
	if y != lay.contentRow {
		return ZoneOutside
	}
	switch {
	case x >= lay.prependStart && x < lay.prependEnd:
		return ZonePrependInner
	case x >= lay.clearStart && x < lay.clearEnd && lay.clearEnd > 0:
		return ZoneClear
	case x >= lay.appendStart && x < lay.appendEnd && lay.appendEnd > 0:
		return ZoneAppendInner
	default:
		return ZoneContent
	}
}

// Render draws the chrome around content at the given total width.
func (m Model) Render(content string, width int, st State) string {
	if width < 8 {
		width = 8
	}
	line := m.contentLine(content, width, st)

	switch m.opts.Variant {
	case VariantUnderlined:
		return m.renderUnderlined(line, width, st, false)
	case VariantFilled:
		return m.renderUnderlined(line, width, st, true)
	case VariantPlain:
		return m.renderPlain(line, width, st)
	default:
		return m.renderOutlined(line, width, st)
	}
}

// contentLine assembles the inner row: padding, prepend affordance,
// body (content or the resting label), clear and append affordances.
// Its cell positions match layout exactly.
func (m Model) contentLine(content string, width int, st State) string {
	lay := m.layout(width, st)
	bodyW := lay.contentEnd - lay.contentStart
	if bodyW < 1 {
		bodyW = 1
	}

	body := content
	if m.opts.Label != "" && !m.floatLabel(st) {
		body = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(m.opts.Label)
	}
	body = padTo(body, bodyW)

	icon := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var b strings.Builder
	b.WriteString(" ")
	if m.opts.PrependInner != "" {
		b.WriteString(icon.Render(m.opts.PrependInner))
		b.WriteString(" ")
	}
	b.WriteString(body)
	if m.showClear(st) {
		b.WriteString(" ")
		b.WriteString(icon.Render(m.opts.ClearIcon))
	}
	if m.opts.AppendInner != "" {
		b.WriteString(" ")
		b.WriteString(icon.Render(m.opts.AppendInner))
	}
	b.WriteString(" ")
	return b.String()
}

func (m Model) renderOutlined(line string, width int, st State) string {
	innerW := width - 2
	bs := lipgloss.NewStyle().Foreground(m.lineColor(st))

	top := bs.Render("╭" + strings.Repeat("─", innerW) + "╮")
	if m.opts.Label != "" && m.floatLabel(st) {
		labelW := lipgloss.Width(m.opts.Label)
		if labelW+4 <= innerW {
			top = bs.Render("╭─ ") +
				m.labelStyle(st).Render(m.opts.Label) +
				bs.Render(" "+strings.Repeat("─", innerW-labelW-3)+"╮")
		}
	}
	mid := bs.Render("│") + line + bs.Render("│")
	bottom := bs.Render("╰" + strings.Repeat("─", innerW) + "╯")

	return top + "\n" + mid + "\n" + bottom
}

func (m Model) renderUnderlined(line string, width int, st State, filled bool) string {
	var rows []string
	if m.opts.Label != "" && m.floatLabel(st) {
		rows = append(rows, " "+m.labelStyle(st).Render(m.opts.Label))
	}
	if filled {
		line = lipgloss.NewStyle().Background(styles.FillColor).Render(line)
	}
	rows = append(rows, line)

	ch := "─"
	if st.Focused {
		ch = "━"
	}
	if st.Disabled {
		ch = "╌"
	}
	rows = append(rows, lipgloss.NewStyle().
		Foreground(m.lineColor(st)).
		Render(strings.Repeat(ch, width)))

	return strings.Join(rows, "\n")
}

func (m Model) renderPlain(line string, width int, st State) string {
	if m.opts.Label != "" && m.floatLabel(st) {
		return " " + m.labelStyle(st).Render(m.opts.Label) + "\n" + line
	}
	return line
}

func (m Model) lineColor(st State) lipgloss.AdaptiveColor {
	switch {
	case st.Disabled:
		return styles.DisabledColor
	case st.Error:
		return styles.ErrorColor
	case st.Focused:
		return styles.PrimaryColor
	default:
		return styles.BorderColor
	}
}

func (m Model) labelStyle(st State) lipgloss.Style {
	switch {
	case st.Disabled:
		return lipgloss.NewStyle().Foreground(styles.DisabledColor)
	case st.Error:
		return lipgloss.NewStyle().Foreground(styles.ErrorColor)
	case st.Focused:
		return lipgloss.NewStyle().Foreground(styles.PrimaryColor)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	}
}

// padTo pads s with spaces to exactly w display cells, truncating when
// it is wider.
func padTo(s string, w int) string {
	sw := lipgloss.Width(s)
	if sw > w {
		return lipgloss.NewStyle().MaxWidth(w).Render(s)
	}
	return s + strings.Repeat(" ", w-sw)
}
