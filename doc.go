// Package pushdown provides a generic pushdown automaton engine for Go.
//
// An automaton is described by an initial state, an initial stack and a
// transition relation. The engine is generic over the state type, the input
// symbol type and the stack symbol type, and knows nothing about the language
// being recognized:
//
//   - Generic types for states, input symbols and stack symbols
//   - Transition relations as tables or plain functions
//   - Epsilon-on-stack rules that drain the stack after the input ends
//   - Single-step execution with observable verdicts
//   - Step hooks, structured logging and bounded runs
//
// # Basic Usage
//
// Describe the relation as a table:
//
//	rules := pushdown.NewTable[State, rune, Symbol]()
//	rules.Configure(Q0).
//	    On('a', Bottom, Q0, A).
//	    On('a', A, Q0, A, A).
//	    On('b', A, Q1)
//	rules.Configure(Q1).
//	    On('b', A, Q1)
//
// Create a builder holding the initial configuration:
//
//	builder := pushdown.NewBuilder[State, rune, Symbol](Q0, []Symbol{Bottom}, rules)
//
// Run a word to completion:
//
//	accepted := builder.BuildSymbols([]rune("aabb")...).Complete()
//
// # Acceptance
//
// Each step reads the next input symbol and pops the stack. A word is
// accepted when the input and the stack run out in the same step. A step
// rejects when no rule matches, or when input remains over an empty stack.
// Once the input is exhausted the relation is queried with None, so rules
// added with OnEpsilon can drain a bottom marker.
//
// # Stepping
//
// Run evaluates one step and returns Processing, Accept or NotAccepting:
//
//	r := builder.BuildSymbols('a', 'b')
//	for r.Run() == pushdown.Processing {
//	    fmt.Println(r.State(), r.Stack())
//	}
//
// Use CompleteWithin or CompleteCtx to bound relations that may not terminate.
package pushdown
