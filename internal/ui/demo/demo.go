// Package demo hosts the interactive form showcasing the text field
// widget: one field per variant and option cluster, scrolling, focus
// cycling, and mouse routing.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldline/fieldline/internal/keys"
	"github.com/fieldline/fieldline/internal/ui/shared/binding"
	"github.com/fieldline/fieldline/internal/ui/shared/fieldchrome"
	"github.com/fieldline/fieldline/internal/ui/shared/focus"
	"github.com/fieldline/fieldline/internal/ui/shared/inputshell"
	"github.com/fieldline/fieldline/internal/ui/shared/textfield"
	"github.com/fieldline/fieldline/internal/ui/styles"
)

const headerRows = 2

// Model holds the demo form state.
type Model struct {
	fields  []textfield.Model
	focused int

	vp    viewport.Model
	ready bool

	status   string
	width    int
	height   int
	quitting bool
}

// New builds the form. The variant applies to every field's chrome so
// the whole form can be previewed in each treatment.
func New(variant string) Model {
	v := fieldchrome.Variant(variant)
	if v == "" {
		v = fieldchrome.VariantOutlined
	}

	fields := []textfield.Model{
		textfield.New(textfield.Config{
			Autofocus: true,
			Trim:      true,
			Chrome:    fieldchrome.Options{Variant: v, Label: "Name", Clearable: true},
			Shell:     inputshell.Options{Hint: "will be trimmed", PrependIcon: "◆"},
		}),
		textfield.New(textfield.Config{
			Placeholder: "you@example.com",
			Counter:     true,
			Attrs:       map[string]string{"maxlength": "40"},
			Chrome:      fieldchrome.Options{Variant: v, Label: "Email"},
			Shell:       inputshell.Options{Hint: "work address preferred"},
		}),
		textfield.New(textfield.Config{
			Type:    textfield.TypePassword,
			Counter: true,
			Attrs:   map[string]string{"maxlength": "20"},
			Chrome:  fieldchrome.Options{Variant: v, Label: "Password", Clearable: true},
			Shell:   inputshell.Options{Hint: "20 characters max", PersistentHint: true},
		}),
		textfield.New(textfield.Config{
			Type:   textfield.TypeNumber,
			Prefix: "$",
			Suffix: "USD",
			Chrome: fieldchrome.Options{Variant: v, Label: "Amount"},
		}),
		textfield.New(textfield.Config{
			Type:                  textfield.TypeSearch,
			Placeholder:           "filter results",
			PersistentPlaceholder: true,
			Chrome:                fieldchrome.Options{Variant: v, Label: "Search", Clearable: true},
		}),
		textfield.New(textfield.Config{
			Type:        textfield.TypeURL,
			Placeholder: "https://",
			Trim:        true,
			Chrome:      fieldchrome.Options{Variant: v, Label: "Website"},
		}),
		textfield.New(textfield.Config{
			Type:        textfield.TypeDate,
			Placeholder: "YYYY-MM-DD",
			Chrome:      fieldchrome.Options{Variant: v, Label: "Start date"},
		}),
		textfield.New(textfield.Config{
			Value:  binding.New(binding.Some("tok_4f8a2c")),
			Chrome: fieldchrome.Options{Variant: v, Label: "API token"},
			Shell:  inputshell.Options{ReadOnly: true, Hint: "read-only", PersistentHint: true},
		}),
		textfield.New(textfield.Config{
			Value:  binding.New(binding.Some("n/a")),
			Chrome: fieldchrome.Options{Variant: v, Label: "Legacy ID"},
			Shell:  inputshell.Options{Disabled: true},
		}),
	}

	return Model{fields: fields, focused: -1, status: "tab to move, ctrl+x to clear"}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case textfield.ChangedMsg:
		m.status = fmt.Sprintf("changed: %s = %q", m.fieldLabel(msg.ID), msg.Value.Or("<null>"))
		return m, nil

	case textfield.ClearedMsg:
		m.status = fmt.Sprintf("cleared: %s", m.fieldLabel(msg.ID))
		return m, nil

	case textfield.ClickMsg:
		m.status = fmt.Sprintf("clicked: %s", m.fieldLabel(msg.ID))
		return m, nil

	case focus.ChangedMsg:
		if msg.Focused {
			m.status = fmt.Sprintf("focused: %s", m.fieldLabel(msg.ID))
		}
		return m, nil

	default:
		// Deferred field continuations and spinner ticks route by id.
		var cmds []tea.Cmd
		for i := range m.fields {
			var cmd tea.Cmd
			m.fields[i], cmd = m.fields[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
}

func (m Model) resize(w, h int) (Model, tea.Cmd) {
	m.width = w
	m.height = h

	for i := range m.fields {
		m.fields[i] = m.fields[i].SetWidth(min(w-2, 48))
	}

	vpHeight := max(h-headerRows-1, 3)
	if !m.ready {
		m.vp = viewport.New(w, vpHeight)
		m.ready = true
	} else {
		m.vp.Width = w
		m.vp.Height = vpHeight
	}
	m.vp.SetContent(m.formView())

	cmd := m.reportVisibility()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Common.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Common.Next):
		return m.cycleFocus(1)

	case key.Matches(msg, keys.Common.Prev):
		return m.cycleFocus(-1)

	case key.Matches(msg, keys.Common.Escape):
		if m.focused >= 0 {
			var cmd tea.Cmd
			m.fields[m.focused], cmd = m.fields[m.focused].Blur()
			m.focused = -1
			return m, cmd
		}
		return m, nil

	default:
		if m.focused < 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
		m.vp.SetContent(m.formView())
		return m, cmd
	}
}

// cycleFocus moves focus to the next focusable field, skipping disabled
// ones, and scrolls it into view.
func (m Model) cycleFocus(dir int) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.focused >= 0 {
		var cmd tea.Cmd
		m.fields[m.focused], cmd = m.fields[m.focused].Blur()
		cmds = append(cmds, cmd)
	}

	next := m.focused
	for range m.fields {
		next = (next + dir + len(m.fields)) % len(m.fields)
		var cmd tea.Cmd
		var f textfield.Model
		f, cmd = m.fields[next].Focus()
		if f.Focused() {
			m.fields[next] = f
			m.focused = next
			cmds = append(cmds, cmd)
			break
		}
	}

	m.scrollTo(m.focused)
	m.vp.SetContent(m.formView())
	cmds = append(cmds, m.reportVisibility())
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		visCmd := m.reportVisibility()
		return m, tea.Batch(cmd, visCmd)
	}

	// Translate terminal coordinates into the scrolled form.
	row := msg.Y - headerRows + m.vp.YOffset
	idx, top := m.fieldAt(row)
	if idx < 0 {
		return m, nil
	}

	local := msg
	local.Y = row - top

	var cmds []tea.Cmd
	if msg.Action == tea.MouseActionPress && m.focused >= 0 && m.focused != idx {
		var cmd tea.Cmd
		m.fields[m.focused], cmd = m.fields[m.focused].Blur()
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.fields[idx], cmd = m.fields[idx].Update(local)
	cmds = append(cmds, cmd)
	if m.fields[idx].Focused() {
		m.focused = idx
	}
	m.vp.SetContent(m.formView())
	return m, tea.Batch(cmds...)
}

// fieldAt maps a form content row to the field covering it, returning
// the field index and its top row. idx is -1 for gaps and overflow.
func (m Model) fieldAt(row int) (idx, top int) {
	y := 0
	for i, f := range m.fields {
		h := lipgloss.Height(f.View())
		if row >= y && row < y+h {
			return i, y
		}
		y += h + 1
	}
	return -1, 0
}

// reportVisibility feeds each field its intersection with the viewport
// window. Fields armed for autofocus react to the first report that
// shows them.
func (m *Model) reportVisibility() tea.Cmd {
	if !m.ready {
		return nil
	}
	topRow := m.vp.YOffset
	bottomRow := m.vp.YOffset + m.vp.Height

	var cmds []tea.Cmd
	y := 0
	for i := range m.fields {
		h := lipgloss.Height(m.fields[i].View())
		visible := y < bottomRow && y+h > topRow
		var cmd tea.Cmd
		m.fields[i], cmd = m.fields[i].ReportVisibility(visible)
		if m.fields[i].Focused() {
			m.focused = i
		}
		cmds = append(cmds, cmd)
		y += h + 1
	}
	m.vp.SetContent(m.formView())
	return tea.Batch(cmds...)
}

// scrollTo adjusts the viewport offset so the field is fully shown.
func (m *Model) scrollTo(idx int) {
	if idx < 0 || !m.ready {
		return
	}
	y := 0
	for i := 0; i < idx; i++ {
		y += lipgloss.Height(m.fields[i].View()) + 1
	}
	h := lipgloss.Height(m.fields[idx].View())

	if y < m.vp.YOffset {
		m.vp.SetYOffset(y)
	} else if y+h > m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(y + h - m.vp.Height)
	}
}

func (m Model) fieldLabel(id string) string {
	for _, f := range m.fields {
		if f.ID() == id {
			label := f.Refs().Chrome.Options().Label
			if label != "" {
				return label
			}
			return id
		}
	}
	return id
}

func (m Model) formView() string {
	views := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		views = append(views, f.View())
	}
	return strings.Join(views, "\n\n")
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	title := lipgloss.NewStyle().Foreground(styles.PrimaryColor).Bold(true).Render("fieldline")
	header := " " + title + "\n"

	footer := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Width(m.width).
		Render(" " + m.status + "  ·  tab/shift+tab: move · esc: blur · ctrl+c: quit")

	return header + "\n" + m.vp.View() + "\n" + footer
}
