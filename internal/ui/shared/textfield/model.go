package textfield

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldline/fieldline/internal/keys"
	"github.com/fieldline/fieldline/internal/ui/shared/binding"
	"github.com/fieldline/fieldline/internal/ui/shared/fieldchrome"
	"github.com/fieldline/fieldline/internal/ui/shared/focus"
	"github.com/fieldline/fieldline/internal/ui/shared/inputshell"
	"github.com/fieldline/fieldline/internal/ui/shared/visibility"
	"github.com/fieldline/fieldline/internal/ui/styles"
)

// Model holds the text field state.
type Model struct {
	cfg    Config
	id     string
	value  *binding.Value[Value]
	input  textinput.Model
	fc     focus.Controller
	shell  inputshell.Model
	chrome fieldchrome.Model
	vis    visibility.Observer
	width  int
}

// New creates a text field from its configuration.
func New(cfg Config) Model {
	if cfg.Type == "" {
		cfg.Type = TypeText
	}
	if cfg.Width == 0 {
		cfg.Width = 40
	}

	shell := inputshell.New(cfg.Shell)
	chrome := fieldchrome.New(cfg.Chrome)

	val := cfg.Value
	if val == nil {
		val = binding.New(binding.None[string]())
	}

	_, inputSide := partitionAttrs(cfg.Attrs)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	if cfg.Type == TypePassword {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	if cfg.Type == TypeNumber {
		ti.Validate = validateNumber
	}
	if n, err := strconv.Atoi(inputSide["maxlength"]); err == nil && n > 0 {
		ti.CharLimit = n
	}
	ti.SetValue(val.Get().Or(""))

	m := Model{
		cfg:    cfg,
		id:     shell.ID(),
		value:  val,
		input:  ti,
		fc:     focus.NewController(shell.ID()),
		shell:  shell,
		chrome: chrome,
		width:  cfg.Width,
	}
	if cfg.Autofocus {
		m.vis = visibility.Subscribe(true)
	}
	m.syncInputWidth()
	return m
}

// ID returns the control's identifier.
func (m Model) ID() string {
	return m.id
}

// Value returns the current model value.
func (m Model) Value() Value {
	return m.value.Get()
}

// Focused reports whether the field has keyboard focus.
func (m Model) Focused() bool {
	return m.fc.Focused()
}

// Init starts the shell's loading indicator when needed.
func (m Model) Init() tea.Cmd {
	return m.shell.Init()
}

// SetValue writes a value through the model cell and echoes it into the
// native input. The returned command announces the change; it is nil
// when the write was redundant.
func (m Model) SetValue(v Value) (Model, tea.Cmd) {
	if !m.value.Set(v) {
		return m, nil
	}
	m.input.SetValue(v.Or(""))
	return m, m.changedCmd(v)
}

// SetWidth resizes the field.
func (m Model) SetWidth(w int) Model {
	if w < 8 {
		w = 8
	}
	m.width = w
	m.syncInputWidth()
	return m
}

// Focus acquires keyboard focus. It is a no-op on a disabled field.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.cfg.Shell.Disabled {
		return m, nil
	}
	fc, changed := m.fc.Focus()
	m.fc = fc
	if changed == nil {
		return m, nil
	}
	return m, tea.Batch(m.input.Focus(), m.focusChangedCmd(changed, true))
}

// Blur releases keyboard focus.
func (m Model) Blur() (Model, tea.Cmd) {
	fc, changed := m.fc.Blur()
	m.fc = fc
	if changed == nil {
		return m, nil
	}
	m.input.Blur()
	return m, m.focusChangedCmd(changed, false)
}

// ReportVisibility feeds an intersection transition to the autofocus
// trigger. The trigger fires at most once for the field's lifetime and
// is inert unless Autofocus was configured.
func (m Model) ReportVisibility(intersecting bool) (Model, tea.Cmd) {
	vis, fired := m.vis.Report(intersecting)
	m.vis = vis
	if !fired {
		return m, nil
	}
	return m.Focus()
}

// Update handles messages routed to this field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case caretRestoreMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.restoreCaret(msg.start, msg.end)
		return m, nil

	case clearMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m.performClear()

	case visibility.Msg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.ReportVisibility(msg.Intersecting)

	case tea.KeyMsg:
		if !m.fc.Focused() || m.cfg.Shell.Disabled || m.cfg.Shell.ReadOnly {
			return m, nil
		}
		if key.Matches(msg, keys.Field.Clear) {
			return m.clear()
		}
		prev := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if raw := m.input.Value(); raw != prev {
			inputCmd := m.onInput(raw)
			return m, tea.Batch(cmd, inputCmd)
		}
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	default:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.shell, cmd = m.shell.Update(msg)
		cmds = append(cmds, cmd)
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
}

// onInput converts a raw input event into a model update. The value is
// written through the model on every event; for trim-eligible fields the
// caret is captured first, the trimmed form is echoed, and a deferred
// continuation restores the caret on the next cycle, after the write has
// flushed through a render.
func (m *Model) onInput(raw string) tea.Cmd {
	next := raw
	trim := m.cfg.Trim && m.cfg.Type.Trimmable()
	if trim {
		next = strings.TrimSpace(raw)
	}

	var cmds []tea.Cmd
	if m.value.Set(binding.Some(next)) {
		cmds = append(cmds, m.changedCmd(binding.Some(next)))
	}
	if trim {
		restore := caretRestoreMsg{id: m.id, start: m.input.Position(), end: m.input.Position()}
		if next != raw {
			m.input.SetValue(next)
		}
		cmds = append(cmds, func() tea.Msg { return restore })
	}
	return tea.Batch(cmds...)
}

// restoreCaret moves the caret back to a captured selection. The
// terminal caret is a single cell, so the pair collapses to its start;
// positions beyond the current value clamp to its end.
func (m *Model) restoreCaret(start, end int) {
	if start < 0 {
		start = 0
	}
	if n := len([]rune(m.input.Value())); start > n {
		start = n
	}
	m.input.SetCursor(start)
}

// clear consumes a clear interaction: focus is acquired immediately and
// the model write is deferred to the next cycle so an in-flight render
// cannot undo it.
func (m Model) clear() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if !m.fc.Focused() {
		var cmd tea.Cmd
		m, cmd = m.Focus()
		cmds = append(cmds, cmd)
	}
	deferred := clearMsg{id: m.id}
	cmds = append(cmds, func() tea.Msg { return deferred })
	return m, tea.Batch(cmds...)
}

// performClear runs on the tick after the clear interaction.
func (m Model) performClear() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.value.Set(binding.None[string]()) {
		cmds = append(cmds, m.changedCmd(binding.None[string]()))
	}
	m.input.SetValue("")
	if m.cfg.OnClear != nil {
		onClear := m.cfg.OnClear
		cmds = append(cmds, func() tea.Msg { return onClear() })
	} else {
		cleared := ClearedMsg{ID: m.id}
		cmds = append(cmds, func() tea.Msg { return cleared })
	}
	return m, tea.Batch(cmds...)
}

// handleMouse routes a widget-local mouse event: presses acquire focus
// (or clear, when the press lands on the clear affordance), releases
// report clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.cfg.Shell.Disabled {
		return m, nil
	}
	zone := m.chrome.HitTest(msg.X-m.shell.PrependWidth(), msg.Y, m.chromeWidth(), m.chromeState())
	if zone == fieldchrome.ZoneOutside {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cmds := []tea.Cmd{m.mouseDownCmd(msg)}
		if zone == fieldchrome.ZoneClear {
			// Consumed here: the clear interaction must not also run the
			// click-to-focus side effects a second time.
			var cmd tea.Cmd
			m, cmd = m.clear()
			return m, tea.Batch(append(cmds, cmd)...)
		}
		var cmd tea.Cmd
		m, cmd = m.Focus()
		return m, tea.Batch(append(cmds, cmd)...)

	case tea.MouseActionRelease:
		return m, m.clickCmd(msg)
	}
	return m, nil
}

// Refs bundles imperative handles to the widget's constituent parts.
// Ownership stays with the widget; the handles are borrowed references.
type Refs struct {
	Shell  *inputshell.Model
	Chrome *fieldchrome.Model
	Input  *textinput.Model
}

// Refs exposes the shell, chrome, and native input for imperative
// access by the owner.
func (m *Model) Refs() Refs {
	return Refs{Shell: &m.shell, Chrome: &m.chrome, Input: &m.input}
}

// isActive resolves the elevated visual state: the label floats and the
// chrome renders its active geometry.
func (m Model) isActive() bool {
	return m.cfg.Type.AlwaysActive() ||
		m.cfg.PersistentPlaceholder ||
		m.fc.Focused() ||
		m.cfg.Active
}

// counterEnabled reports whether a counter was requested, explicitly or
// by configuring a maximum or a counting function.
func (m Model) counterEnabled() bool {
	return m.cfg.Counter || m.cfg.CounterMax != "" || m.cfg.CounterValue != nil
}

// resolveCounter computes the displayed count and optional maximum. The
// maxlength attribute takes precedence over the configured maximum.
func (m Model) resolveCounter() (count int, max string) {
	s := m.value.Get().Or("")
	if m.cfg.CounterValue != nil {
		count = m.cfg.CounterValue(s)
	} else {
		count = len([]rune(s))
	}
	_, inputSide := partitionAttrs(m.cfg.Attrs)
	if ml := inputSide["maxlength"]; ml != "" {
		return count, ml
	}
	return count, m.cfg.CounterMax
}

func (m Model) chromeState() fieldchrome.State {
	return fieldchrome.State{
		Focused:  m.fc.Focused(),
		Active:   m.isActive(),
		Dirty:    inputshell.Dirty(m.value.Get().Or("") != "", m.cfg.Dirty),
		Disabled: m.cfg.Shell.Disabled,
		Error:    m.shell.Error(),
	}
}

// chromeWidth is the field width minus the shell's outer icons.
func (m Model) chromeWidth() int {
	w := m.width - m.shell.PrependWidth() - m.shell.AppendWidth()
	if w < 8 {
		w = 8
	}
	return w
}

// syncInputWidth sizes the native input to the chrome's content area,
// leaving room for the affixes. The clear cell is reserved whenever the
// field is clearable so the width does not shift as content appears.
func (m *Model) syncInputWidth() {
	st := m.chromeState()
	st.Dirty = st.Dirty || m.cfg.Chrome.Clearable
	w := m.chrome.ContentWidth(m.chromeWidth(), st)
	for _, affix := range []string{m.cfg.Prefix, m.cfg.Suffix, m.cfg.DefaultContent} {
		if affix != "" {
			w -= lipgloss.Width(affix) + 1
		}
	}
	if w < 2 {
		w = 2
	}
	m.input.Width = w - 1
}

func (m Model) changedCmd(v Value) tea.Cmd {
	if m.cfg.OnChange != nil {
		onChange := m.cfg.OnChange
		return func() tea.Msg { return onChange(v) }
	}
	changed := ChangedMsg{ID: m.id, Value: v}
	return func() tea.Msg { return changed }
}

func (m Model) focusChangedCmd(changed tea.Cmd, focused bool) tea.Cmd {
	if m.cfg.OnFocusChange == nil {
		return changed
	}
	onFocusChange := m.cfg.OnFocusChange
	return func() tea.Msg { return onFocusChange(focused) }
}

func (m Model) clickCmd(mouse tea.MouseMsg) tea.Cmd {
	if m.cfg.OnClick != nil {
		onClick := m.cfg.OnClick
		return func() tea.Msg { return onClick(mouse) }
	}
	clicked := ClickMsg{ID: m.id, Mouse: mouse}
	return func() tea.Msg { return clicked }
}

func (m Model) mouseDownCmd(mouse tea.MouseMsg) tea.Cmd {
	if m.cfg.OnMouseDown != nil {
		onMouseDown := m.cfg.OnMouseDown
		return func() tea.Msg { return onMouseDown(mouse) }
	}
	down := MouseDownMsg{ID: m.id, Mouse: mouse}
	return func() tea.Msg { return down }
}

func validateNumber(s string) error {
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		if r == '.' {
			continue
		}
		return strconv.ErrSyntax
	}
	return nil
}
