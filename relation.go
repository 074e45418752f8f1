package pushdown

import (
	"fmt"
	"slices"
)

// Key identifies a rule of a transition relation: the current state, the
// optional next input symbol and the popped stack top.
type Key[Q, V, S comparable] struct {
	// State is the state the rule fires from.
	State Q

	// Input is the consumed input symbol. None marks an epsilon-on-stack rule.
	Input Option[V]

	// Top is the stack symbol popped by the rule.
	Top S
}

// Move is the right-hand side of a rule.
type Move[Q, S comparable] struct {
	// Next is the state the automaton moves to.
	Next Q

	// Push replaces the popped symbol. Push[0] ends up on top of the stack.
	Push []S
}

// Relation is a transition relation treated as a deterministic partial function.
// Implementations must be safe for concurrent reads and must not change once
// a Builder has been created from them.
type Relation[Q, V, S comparable] interface {
	// Lookup returns the move for the given key, or false if no rule applies.
	Lookup(state Q, input Option[V], top S) (Move[Q, S], bool)
}

// RelationFunc adapts an ordinary function to the Relation interface.
type RelationFunc[Q, V, S comparable] func(state Q, input Option[V], top S) (Move[Q, S], bool)

// Lookup calls f(state, input, top).
func (f RelationFunc[Q, V, S]) Lookup(state Q, input Option[V], top S) (Move[Q, S], bool) {
	return f(state, input, top)
}

// Table is a map-backed Relation.
type Table[Q, V, S comparable] map[Key[Q, V, S]]Move[Q, S]

// NewTable creates an empty table.
func NewTable[Q, V, S comparable]() Table[Q, V, S] {
	return make(Table[Q, V, S])
}

// Lookup returns the move stored under the exact key.
func (t Table[Q, V, S]) Lookup(state Q, input Option[V], top S) (Move[Q, S], bool) {
	move, ok := t[Key[Q, V, S]{State: state, Input: input, Top: top}]
	return move, ok
}

// Add stores a rule. It returns an InvalidOperationError if a rule for the
// same key already exists.
func (t Table[Q, V, S]) Add(state Q, input Option[V], top S, next Q, push ...S) error {
	key := Key[Q, V, S]{State: state, Input: input, Top: top}
	if existing, ok := t[key]; ok {
		return &InvalidOperationError{
			Message: fmt.Sprintf(
				"a rule is already configured for state '%v', input '%v' and stack top '%v' (moves to '%v'); the relation must be a partial function",
				state, input, top, existing.Next,
			),
		}
	}
	t[key] = Move[Q, S]{Next: next, Push: slices.Clone(push)}
	return nil
}

// Clone returns a deep copy of the table. Push slices are copied as well, so
// neither table can observe edits made to the other.
func (t Table[Q, V, S]) Clone() Table[Q, V, S] {
	if t == nil {
		return nil
	}
	clone := make(Table[Q, V, S], len(t))
	for key, move := range t {
		clone[key] = Move[Q, S]{Next: move.Next, Push: slices.Clone(move.Push)}
	}
	return clone
}
