package pushdown

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Rule is a single entry of a Table.
type Rule[Q, V, S comparable] struct {
	Key  Key[Q, V, S]
	Move Move[Q, S]
}

// IsEpsilon returns true for epsilon-on-stack rules.
func (r Rule[Q, V, S]) IsEpsilon() bool {
	return r.Key.Input.IsNone()
}

// String renders the rule as δ(state, input, top) = (next, [push...]).
func (r Rule[Q, V, S]) String() string {
	push := make([]string, len(r.Move.Push))
	for i, s := range r.Move.Push {
		push[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("δ(%v, %v, %v) = (%v, [%s])",
		r.Key.State, r.Key.Input, r.Key.Top, r.Move.Next, strings.Join(push, " "))
}

// RelationInfo enumerates the symbols and rules of a Table.
type RelationInfo[Q, V, S comparable] struct {
	// States contains every state named by a rule, as source or destination.
	States []Q

	// InputSymbols contains every input symbol consumed by a rule.
	InputSymbols []V

	// StackSymbols contains every stack symbol popped or pushed by a rule.
	StackSymbols []S

	// Rules contains all rules ordered by their string form.
	Rules []Rule[Q, V, S]
}

// Info returns the symbols and rules of the table. Every list is ordered by the
// values' string representation so the result is stable across calls.
func (t Table[Q, V, S]) Info() RelationInfo[Q, V, S] {
	states := make(map[Q]struct{})
	inputs := make(map[V]struct{})
	stack := make(map[S]struct{})

	info := RelationInfo[Q, V, S]{Rules: make([]Rule[Q, V, S], 0, len(t))}
	for key, move := range t {
		info.Rules = append(info.Rules, Rule[Q, V, S]{Key: key, Move: move})

		states[key.State] = struct{}{}
		states[move.Next] = struct{}{}
		if v, ok := key.Input.Get(); ok {
			inputs[v] = struct{}{}
		}
		stack[key.Top] = struct{}{}
		for _, s := range move.Push {
			stack[s] = struct{}{}
		}
	}

	info.States = sortedKeys(states)
	info.InputSymbols = sortedKeys(inputs)
	info.StackSymbols = sortedKeys(stack)
	slices.SortFunc(info.Rules, func(a, b Rule[Q, V, S]) int {
		return cmp.Compare(a.String(), b.String())
	})
	return info
}

// sortedKeys returns the keys of m ordered by their string representation.
func sortedKeys[T comparable](m map[T]struct{}) []T {
	keys := make([]T, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b T) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return keys
}
