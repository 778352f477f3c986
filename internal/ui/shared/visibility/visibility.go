// Package visibility reports element-intersects-viewport transitions to
// interested widgets. A scrolling container feeds Report calls (or
// broadcasts Msg values) as controls enter and leave the visible region.
package visibility

// Msg is broadcast by a scrolling container when a control's
// intersection state changes.
type Msg struct {
	ID           string
	Intersecting bool
}

// Observer is a two-state trigger: armed until the first intersecting
// report, then fired. A once-observer tears itself down after firing
// and ignores every later report. The zero value is inert and never
// fires.
type Observer struct {
	subscribed bool
	once       bool
	fired      bool
}

// Subscribe returns an armed observer. When once is set the observer
// unsubscribes itself after the first intersecting report.
func Subscribe(once bool) Observer {
	return Observer{subscribed: true, once: once}
}

// Report feeds an intersection transition to the observer. It returns
// the advanced observer and whether the trigger fired. Non-intersecting
// reports never fire.
func (o Observer) Report(intersecting bool) (Observer, bool) {
	if !o.subscribed || !intersecting {
		return o, false
	}
	o.fired = true
	if o.once {
		o.subscribed = false
	}
	return o, true
}

// Fired reports whether the observer has ever triggered.
func (o Observer) Fired() bool {
	return o.fired
}
