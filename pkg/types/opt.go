// Package types holds the small value types shared by the client, the models
// and the endpoint wrappers.
package types

type optState uint8

const (
	unset optState = iota
	null
	present
)

// Opt is a value that is either not provided, explicitly null, or present.
// The zero value is "not provided"; such values are never sent on the wire.
type Opt[T any] struct {
	value T
	state optState
}

// Some returns a provided value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, state: present}
}

// Null returns an explicit null.
func Null[T any]() Opt[T] {
	return Opt[T]{state: null}
}

// Unset returns a value in the "not provided" state. Equivalent to Opt[T]{}.
func Unset[T any]() Opt[T] {
	return Opt[T]{}
}

// FromPtr maps nil to "not provided" and anything else to a provided value.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Some(*p)
}

// IsSet reports whether the caller provided anything, including an explicit null.
func (o Opt[T]) IsSet() bool { return o.state != unset }

// IsNull reports whether the value is an explicit null.
func (o Opt[T]) IsNull() bool { return o.state == null }

// Get returns the value and true only when a non-null value is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.state == present
}

// OrElse returns the value when present and def otherwise.
func (o Opt[T]) OrElse(def T) T {
	if o.state == present {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when no value is present.
func (o Opt[T]) Ptr() *T {
	if o.state != present {
		return nil
	}
	v := o.value
	return &v
}
