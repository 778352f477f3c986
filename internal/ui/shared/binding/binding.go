// Package binding provides the proxied model used for two-way value
// synchronization between a widget and its owner. The owner is the
// source of truth: widgets read and write through the cell and never
// keep a private copy of the value.
package binding

// Value is an observable value cell with a single external subscriber
// slot. Writes notify the subscriber synchronously.
type Value[T comparable] struct {
	v        T
	onChange func(T)
}

// New creates a value cell holding initial.
func New[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	return c.v
}

// Set stores v and synchronously notifies the subscriber. Writing the
// current value again is a no-op: it reports false and produces no
// notification.
func (c *Value[T]) Set(v T) bool {
	if v == c.v {
		return false
	}
	c.v = v
	if c.onChange != nil {
		c.onChange(v)
	}
	return true
}

// OnChange installs the subscriber. Installing a new subscriber replaces
// the previous one; a nil fn detaches it.
func (c *Value[T]) OnChange(fn func(T)) {
	c.onChange = fn
}

// Null wraps a value that may be absent, such as a cleared text field.
// The zero value is null.
type Null[T comparable] struct {
	V     T
	Valid bool
}

// Some wraps a present value.
func Some[T comparable](v T) Null[T] {
	return Null[T]{V: v, Valid: true}
}

// None returns the absent value.
func None[T comparable]() Null[T] {
	return Null[T]{}
}

// Or returns the wrapped value, or fallback when null.
func (n Null[T]) Or(fallback T) T {
	if n.Valid {
		return n.V
	}
	return fallback
}
