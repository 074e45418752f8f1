package pushdown

import (
	"fmt"
	"log/slog"
)

// EpsilonString is the string representation of an absent symbol.
const EpsilonString = "ε"

// Option holds a value that may be absent. An absent input symbol marks an
// epsilon-on-stack rule.
type Option[T comparable] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T comparable](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T comparable]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// String returns the value's string representation, or EpsilonString if absent.
func (o Option[T]) String() string {
	if !o.present {
		return EpsilonString
	}
	return fmt.Sprint(o.value)
}

// LogValue renders the option as a string in structured logs.
func (o Option[T]) LogValue() slog.Value {
	return slog.StringValue(o.String())
}
