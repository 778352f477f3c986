// Package keys defines the shared key bindings used across fieldline.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeyMap holds bindings shared by every screen.
type CommonKeyMap struct {
	Quit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// FieldKeyMap holds bindings handled by a focused text field.
type FieldKeyMap struct {
	Clear key.Binding
}

// Common is the application-wide key map.
var Common = CommonKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "blur field"),
	),
}

// Field is the key map for focused text fields.
// ctrl+x avoids colliding with the editing keys the input itself owns
// (ctrl+u, ctrl+k, ctrl+w).
var Field = FieldKeyMap{
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear field"),
	),
}
