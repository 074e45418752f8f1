package pushdown

import "slices"

// Stack is the pushdown memory of an automaton. The top is the last element.
type Stack[S any] struct {
	items []S
}

// NewStack creates a stack from symbols in bottom-to-top order; the last
// symbol becomes the top.
func NewStack[S any](symbols ...S) *Stack[S] {
	return &Stack[S]{items: slices.Clone(symbols)}
}

// Push places a symbol on top of the stack.
func (s *Stack[S]) Push(symbol S) {
	s.items = append(s.items, symbol)
}

// Pop removes and returns the top symbol. It returns false if the stack is empty.
func (s *Stack[S]) Pop() (S, bool) {
	var zero S
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	symbol := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return symbol, true
}

// Peek returns the top symbol without removing it.
func (s *Stack[S]) Peek() (S, bool) {
	var zero S
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len reports the current stack depth.
func (s *Stack[S]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the stack contents, bottom first. The result is
// never nil, even for an empty stack.
func (s *Stack[S]) Items() []S {
	if s == nil {
		return []S{}
	}
	items := make([]S, len(s.items))
	copy(items, s.items)
	return items
}

// Clone returns an independent copy of the stack.
func (s *Stack[S]) Clone() *Stack[S] {
	if s == nil {
		return NewStack[S]()
	}
	return NewStack(s.items...)
}
