// Package focus tracks keyboard focus for a single control.
package focus

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg reports a focus transition for the control with the given ID.
type ChangedMsg struct {
	ID      string
	Focused bool
}

// Controller holds a boolean focused state with explicit transitions.
// A control is either focused or it is not; there is no intermediate
// state.
type Controller struct {
	id      string
	focused bool
}

// NewController creates a blurred controller for the given control ID.
func NewController(id string) Controller {
	return Controller{id: id}
}

// Focused reports the current state.
func (c Controller) Focused() bool {
	return c.focused
}

// Focus transitions to focused. The returned command announces the
// transition; it is nil when the controller was already focused.
func (c Controller) Focus() (Controller, tea.Cmd) {
	if c.focused {
		return c, nil
	}
	c.focused = true
	return c, c.changed()
}

// Blur transitions to unfocused. The returned command announces the
// transition; it is nil when the controller was already blurred.
func (c Controller) Blur() (Controller, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	c.focused = false
	return c, c.changed()
}

func (c Controller) changed() tea.Cmd {
	msg := ChangedMsg{ID: c.id, Focused: c.focused}
	return func() tea.Msg { return msg }
}
