package pushdown

// StateConfiguration provides a fluent interface for adding the rules that
// fire from a single state.
type StateConfiguration[Q, V, S comparable] struct {
	table Table[Q, V, S]
	state Q
}

// Configure begins configuration of the rules leaving state.
//
//	table.Configure(Q0).
//	    On(a, Bottom, Q0, A).
//	    On(b, A, Q1)
func (t Table[Q, V, S]) Configure(state Q) *StateConfiguration[Q, V, S] {
	return &StateConfiguration[Q, V, S]{table: t, state: state}
}

// State returns the state being configured.
func (sc *StateConfiguration[Q, V, S]) State() Q {
	return sc.state
}

// On adds an input-consuming rule: reading input with top on the stack moves
// to next and replaces top with push. It panics if the key is already taken.
func (sc *StateConfiguration[Q, V, S]) On(input V, top S, next Q, push ...S) *StateConfiguration[Q, V, S] {
	sc.add(Some(input), top, next, push)
	return sc
}

// OnEpsilon adds an epsilon-on-stack rule that fires when the input is
// exhausted. It panics if the key is already taken.
func (sc *StateConfiguration[Q, V, S]) OnEpsilon(top S, next Q, push ...S) *StateConfiguration[Q, V, S] {
	sc.add(None[V](), top, next, push)
	return sc
}

func (sc *StateConfiguration[Q, V, S]) add(input Option[V], top S, next Q, push []S) {
	if err := sc.table.Add(sc.state, input, top, next, push...); err != nil {
		panic(err)
	}
}
