// Package textfield implements a single-line text entry widget composed
// of an input decoration shell, a field chrome renderer, and an
// optional character counter, with two-way value binding, focus
// choreography, caret-preserving input normalization, and
// visibility-triggered autofocus.
package textfield

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldline/fieldline/internal/ui/shared/binding"
	"github.com/fieldline/fieldline/internal/ui/shared/fieldchrome"
	"github.com/fieldline/fieldline/internal/ui/shared/inputshell"
)

// Type classifies the entry control, mirroring the native input types.
type Type string

const (
	TypeText          Type = "text"
	TypePassword      Type = "password"
	TypeSearch        Type = "search"
	TypeTel           Type = "tel"
	TypeURL           Type = "url"
	TypeNumber        Type = "number"
	TypeColor         Type = "color"
	TypeFile          Type = "file"
	TypeTime          Type = "time"
	TypeDate          Type = "date"
	TypeDatetimeLocal Type = "datetime-local"
	TypeWeek          Type = "week"
	TypeMonth         Type = "month"
)

// alwaysActive lists the types whose native pickers carry their own
// chrome, so the field always presents in the active state.
var alwaysActive = map[Type]bool{
	TypeColor:         true,
	TypeFile:          true,
	TypeTime:          true,
	TypeDate:          true,
	TypeDatetimeLocal: true,
	TypeWeek:          true,
	TypeMonth:         true,
}

// trimmable lists the types eligible for the trim model modifier.
var trimmable = map[Type]bool{
	TypeText:     true,
	TypeSearch:   true,
	TypePassword: true,
	TypeTel:      true,
	TypeURL:      true,
}

// AlwaysActive reports whether the type forces the active visual state.
func (t Type) AlwaysActive() bool {
	return alwaysActive[t]
}

// Trimmable reports whether the trim modifier applies to the type.
func (t Type) Trimmable() bool {
	return trimmable[t]
}

// Value is the nullable model value carried by a text field. A cleared
// field holds the null value.
type Value = binding.Null[string]

// Config declares a text field. Fields are read-only snapshots; the
// widget never mutates its configuration.
type Config struct {
	// Type selects the entry type. Default TypeText.
	Type Type

	Placeholder string
	// PersistentPlaceholder keeps the field active (placeholder visible)
	// while blurred.
	PersistentPlaceholder bool

	// Prefix and Suffix are display-only strings rendered around the
	// input inside the chrome.
	Prefix string
	Suffix string

	// Counter enables the character counter. CounterMax, when set, both
	// enables the counter and supplies the displayed maximum verbatim.
	Counter    bool
	CounterMax string
	// CounterValue overrides the default length-based counting.
	CounterValue func(string) int
	// PersistentCounter keeps the counter visible while blurred.
	PersistentCounter bool

	// Autofocus arms the visibility-triggered focus: the field focuses
	// itself the first time it scrolls into view.
	Autofocus bool

	// Trim applies the whitespace-trim model modifier to eligible types.
	Trim bool

	// Active and Dirty force the respective resolved states.
	Active bool
	Dirty  bool

	// Width is the total width in cells. Default 40.
	Width int

	// Value is the host-owned model cell. When nil the widget allocates
	// one; reads and writes always flow through the cell either way.
	Value *binding.Value[Value]

	// DefaultContent is custom slotted content rendered before the input
	// inside the chrome's content area.
	DefaultContent string

	// Attrs is the ambient attribute bag, partitioned between the shell
	// and the native input by an explicit table (see attrs.go).
	Attrs map[string]string

	// Shell and Chrome options are passed through to the collaborating
	// components.
	Shell  inputshell.Options
	Chrome fieldchrome.Options

	// Optional notification overrides. When nil the widget emits its own
	// message types (ChangedMsg, ClearedMsg, ClickMsg, MouseDownMsg,
	// focus.ChangedMsg).
	OnChange      func(Value) tea.Msg
	OnClear       func() tea.Msg
	OnClick       func(tea.MouseMsg) tea.Msg
	OnMouseDown   func(tea.MouseMsg) tea.Msg
	OnFocusChange func(bool) tea.Msg
}
