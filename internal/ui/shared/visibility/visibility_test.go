package visibility

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserver_OnceFiresExactlyOnce(t *testing.T) {
	o := Subscribe(true)

	o, fired := o.Report(true)
	require.True(t, fired, "expected first intersecting report to fire")

	o, fired = o.Report(true)
	require.False(t, fired, "expected second intersecting report to be ignored")
	require.True(t, o.Fired())
}

func TestObserver_NonIntersectingNeverFires(t *testing.T) {
	o := Subscribe(true)

	o, fired := o.Report(false)
	require.False(t, fired)
	require.False(t, o.Fired())

	// Still armed: the next intersecting report fires.
	_, fired = o.Report(true)
	require.True(t, fired)
}

func TestObserver_ZeroValueIsInert(t *testing.T) {
	var o Observer

	o, fired := o.Report(true)
	require.False(t, fired, "expected an unsubscribed observer to ignore reports")
	require.False(t, o.Fired())
}

func TestObserver_Continuous(t *testing.T) {
	o := Subscribe(false)

	o, fired := o.Report(true)
	require.True(t, fired)

	_, fired = o.Report(true)
	require.True(t, fired, "expected a continuous observer to keep reporting")
}
