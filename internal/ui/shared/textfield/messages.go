package textfield

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg reports a model value change.
type ChangedMsg struct {
	ID    string
	Value Value
}

// ClearedMsg reports that the field was cleared.
type ClearedMsg struct {
	ID string
}

// ClickMsg reports a click on the control, carrying the originating
// mouse event.
type ClickMsg struct {
	ID    string
	Mouse tea.MouseMsg
}

// MouseDownMsg reports a press on the control, carrying the originating
// mouse event.
type MouseDownMsg struct {
	ID    string
	Mouse tea.MouseMsg
}

// caretRestoreMsg is the deferred continuation that restores the caret
// after a value write has flushed through a render cycle.
type caretRestoreMsg struct {
	id         string
	start, end int
}

// clearMsg is the deferred continuation that performs the model write
// for a clear interaction on the tick after the interaction.
type clearMsg struct {
	id string
}
