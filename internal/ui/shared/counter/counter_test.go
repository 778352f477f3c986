package counter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter_InactiveRendersNothing(t *testing.T) {
	m := New("5", "10", false)
	require.Empty(t, m.View(), "expected inactive counter to render nothing")
}

func TestCounter_ValueOnly(t *testing.T) {
	m := New("5", "", true)
	require.Contains(t, m.View(), "5")
	require.NotContains(t, m.View(), "/")
}

func TestCounter_ValueWithMax(t *testing.T) {
	m := New("6", "10", true)
	require.Contains(t, m.View(), "6 / 10")
}

func TestCounter_MalformedMaxRenderedVerbatim(t *testing.T) {
	m := New("3", "lots", true)
	require.Contains(t, m.View(), "3 / lots", "expected non-numeric max to pass through unvalidated")
}
