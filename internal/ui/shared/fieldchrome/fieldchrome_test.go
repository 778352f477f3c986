package fieldchrome

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	m := New(Options{})
	require.Equal(t, VariantOutlined, m.opts.Variant, "expected outlined to be the default variant")
	require.Equal(t, DefaultClearIcon, m.opts.ClearIcon)
}

func TestRender_Outlined_FloatingLabel(t *testing.T) {
	m := New(Options{Label: "Name"})

	active := m.Render("content", 30, State{Active: true})
	lines := strings.Split(active, "\n")
	require.Len(t, lines, 3, "expected outlined chrome to span three rows")
	require.Contains(t, lines[0], "Name", "expected active label to float onto the top border")
	require.Contains(t, lines[1], "content")
}

func TestRender_Outlined_RestingLabel(t *testing.T) {
	m := New(Options{Label: "Name"})

	resting := m.Render("content", 30, State{})
	lines := strings.Split(resting, "\n")
	require.NotContains(t, lines[0], "Name", "expected resting label off the border")
	require.Contains(t, lines[1], "Name", "expected resting label in the content area")
	require.NotContains(t, resting, "content", "expected resting label to replace empty content")
}

func TestRender_DirtyFloatsLabel(t *testing.T) {
	// A blurred field with content is not "active", but the label still
	// floats so the content stays readable.
	m := New(Options{Label: "Name"})

	view := m.Render("hello", 30, State{Dirty: true})
	lines := strings.Split(view, "\n")
	require.Contains(t, lines[0], "Name")
	require.Contains(t, lines[1], "hello")
}

func TestRender_Underlined_Rows(t *testing.T) {
	m := New(Options{Variant: VariantUnderlined, Label: "Email"})

	view := m.Render("x", 20, State{Active: true})
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Email")
	require.Contains(t, lines[2], "─")

	blurred := m.Render("", 20, State{})
	require.Len(t, strings.Split(blurred, "\n"), 2, "expected no label row while resting")
}

func TestRender_Underlined_FocusedUsesHeavyRule(t *testing.T) {
	m := New(Options{Variant: VariantUnderlined})

	view := m.Render("x", 20, State{Focused: true, Active: true})
	require.Contains(t, view, "━")
}

func TestRender_LineWidths(t *testing.T) {
	m := New(Options{Label: "L", PrependInner: "$", AppendInner: "@", Clearable: true})
	st := State{Active: true, Dirty: true}

	view := m.Render("abc", 32, st)
	for i, line := range strings.Split(view, "\n") {
		require.Equal(t, 32, lipgloss.Width(line), "expected row %d to span the full width", i)
	}
}

func TestClearAffordance(t *testing.T) {
	m := New(Options{Clearable: true})

	require.Contains(t, m.Render("x", 20, State{Dirty: true}), DefaultClearIcon)
	require.NotContains(t, m.Render("", 20, State{}), DefaultClearIcon,
		"expected no clear affordance on a pristine field")
	require.NotContains(t, m.Render("x", 20, State{Dirty: true, Disabled: true}), DefaultClearIcon,
		"expected no clear affordance on a disabled field")
}

func TestHitTest_Zones(t *testing.T) {
	m := New(Options{PrependInner: "$", AppendInner: "@", Clearable: true})
	st := State{Dirty: true}
	width := 30

	lay := m.layout(width, st)
	require.Equal(t, ZonePrependInner, m.HitTest(lay.prependStart, 1, width, st))
	require.Equal(t, ZoneContent, m.HitTest(lay.contentStart, 1, width, st))
	require.Equal(t, ZoneClear, m.HitTest(lay.clearStart, 1, width, st))
	require.Equal(t, ZoneAppendInner, m.HitTest(lay.appendStart, 1, width, st))
}

func TestHitTest_Outside(t *testing.T) {
	m := New(Options{})

	require.Equal(t, ZoneOutside, m.HitTest(-1, 1, 30, State{}))
	require.Equal(t, ZoneOutside, m.HitTest(30, 1, 30, State{}))
	require.Equal(t, ZoneOutside, m.HitTest(5, 0, 30, State{}), "expected the border row to miss")
}

func TestHitTest_ClearZoneAbsentWhenPristine(t *testing.T) {
	m := New(Options{Clearable: true})
	width := 30

	dirty := State{Dirty: true}
	lay := m.layout(width, dirty)
	require.Equal(t, ZoneClear, m.HitTest(lay.clearStart, 1, width, dirty))
	require.Equal(t, ZoneContent, m.HitTest(lay.clearStart, 1, width, State{}),
		"expected the clear zone to collapse into content when not shown")
}

func TestContentWidth(t *testing.T) {
	plain := New(Options{Variant: VariantPlain})
	// plain: one pad cell each side
	require.Equal(t, 18, plain.ContentWidth(20, State{}))

	outlined := New(Options{})
	// outlined: border + pad each side
	require.Equal(t, 16, outlined.ContentWidth(20, State{}))
}

func TestHeight(t *testing.T) {
	require.Equal(t, 3, New(Options{}).Height(State{}))
	require.Equal(t, 2, New(Options{Variant: VariantUnderlined, Label: "x"}).Height(State{}))
	require.Equal(t, 3, New(Options{Variant: VariantUnderlined, Label: "x"}).Height(State{Active: true}))
	require.Equal(t, 1, New(Options{Variant: VariantPlain}).Height(State{Active: true}))
	require.Equal(t, 2, New(Options{Variant: VariantPlain, Label: "x"}).Height(State{Active: true}))
}
