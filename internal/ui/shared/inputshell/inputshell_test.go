package inputshell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesID(t *testing.T) {
	m := New(Options{})
	require.True(t, strings.HasPrefix(m.ID(), "input-"), "expected generated ID prefix, got %q", m.ID())
	require.Len(t, m.ID(), len("input-")+8)

	other := New(Options{})
	require.NotEqual(t, m.ID(), other.ID(), "expected generated IDs to be unique")
}

func TestNew_KeepsConfiguredID(t *testing.T) {
	m := New(Options{ID: "email"})
	require.Equal(t, "email", m.ID())
}

func TestDirty(t *testing.T) {
	require.True(t, Dirty(true, false), "expected content to make the control dirty")
	require.True(t, Dirty(false, true), "expected the override to make the control dirty")
	require.False(t, Dirty(false, false))
}

func TestMessages_ErrorsWin(t *testing.T) {
	m := New(Options{
		Hint:          "your legal name",
		ErrorMessages: []string{"required", "too short"},
	})

	msgs := m.Messages(true)
	require.Equal(t, []string{"required"}, msgs, "expected errors to win over hint, capped at MaxErrors")
}

func TestMessages_MaxErrors(t *testing.T) {
	m := New(Options{
		ErrorMessages: []string{"a", "b", "c"},
		MaxErrors:     2,
	})
	require.Equal(t, []string{"a", "b"}, m.Messages(false))
}

func TestMessages_HintVisibility(t *testing.T) {
	m := New(Options{Hint: "hint text"})
	require.Nil(t, m.Messages(false), "expected hint hidden while blurred")
	require.Equal(t, []string{"hint text"}, m.Messages(true))

	persistent := New(Options{Hint: "hint text", PersistentHint: true})
	require.Equal(t, []string{"hint text"}, persistent.Messages(false))
}

func TestError(t *testing.T) {
	require.False(t, New(Options{}).Error())
	require.True(t, New(Options{ErrorMessages: []string{"bad"}}).Error())
}

func TestRender_DetailsRow(t *testing.T) {
	m := New(Options{Hint: "hint text"})

	view := m.Render("[control]", "6 / 10", true, 60)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2, "expected a details row below the control")
	require.Contains(t, lines[0], "[control]")
	require.Contains(t, lines[1], "hint text")
	require.Contains(t, lines[1], "6 / 10")
}

func TestRender_NoDetailsWhenEmpty(t *testing.T) {
	m := New(Options{})
	view := m.Render("[control]", "", false, 60)
	require.Equal(t, "[control]", view)
}

func TestRender_HideDetails(t *testing.T) {
	m := New(Options{Hint: "hint", PersistentHint: true, HideDetails: true})
	view := m.Render("[control]", "3", true, 60)
	require.NotContains(t, view, "hint")
	require.NotContains(t, view, "3")
}

func TestRender_Icons(t *testing.T) {
	m := New(Options{PrependIcon: "✉", AppendIcon: "…"})
	view := m.Render("[control]", "", false, 60)
	require.Contains(t, view, "✉")
	require.Contains(t, view, "…")
}

func TestInit_LoadingOnly(t *testing.T) {
	require.Nil(t, New(Options{}).Init(), "expected no spinner tick when not loading")
	require.NotNil(t, New(Options{Loading: true}).Init())
}

func TestOuterWidths(t *testing.T) {
	require.Equal(t, 0, New(Options{}).PrependWidth())
	require.Equal(t, 0, New(Options{}).AppendWidth())
	require.Equal(t, 2, New(Options{PrependIcon: "✉"}).PrependWidth(), "icon plus separator")
	require.Equal(t, 2, New(Options{AppendIcon: "…"}).AppendWidth(), "icon plus separator")
	require.Equal(t, 2, New(Options{Loading: true}).PrependWidth(), "spinner stands in for the icon")
}
