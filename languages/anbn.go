package languages

import "github.com/atlekbai/pushdown"

const (
	q0 State = "q0"
	q1 State = "q1"

	symA Symbol = "A"
)

// AnBn recognizes aⁿbⁿ for n ≥ 1. The bottom marker is replaced by the first
// A, so the stack empties exactly when the last b is read.
func AnBn() Language {
	rules := pushdown.NewTable[State, Letter, Symbol]()
	rules.Configure(q0).
		On('a', Bottom, q0, symA).
		On('a', symA, q0, symA, symA).
		On('b', symA, q1)
	rules.Configure(q1).
		On('b', symA, q1)

	return Language{
		Name:        "anbn",
		Description: "aⁿbⁿ for n ≥ 1",
		Initial:     q0,
		Stack:       []Symbol{Bottom},
		Rules:       rules,
		Accepted:    []string{"ab", "aabb", "aaabbb"},
		Rejected:    []string{"", "a", "b", "abb", "aab", "ba"},
	}
}

// AnBnSentinel recognizes aⁿbⁿ for n ≥ 1 while keeping the bottom marker on
// the stack. An epsilon rule drains the marker once the input has ended.
func AnBnSentinel() Language {
	rules := pushdown.NewTable[State, Letter, Symbol]()
	rules.Configure(q0).
		On('a', Bottom, q0, symA, Bottom).
		On('a', symA, q0, symA, symA).
		On('b', symA, q1)
	rules.Configure(q1).
		On('b', symA, q1).
		OnEpsilon(Bottom, q1)

	return Language{
		Name:        "anbn-sentinel",
		Description: "aⁿbⁿ for n ≥ 1, bottom marker drained by an epsilon rule",
		Initial:     q0,
		Stack:       []Symbol{Bottom},
		Rules:       rules,
		Accepted:    []string{"ab", "aabb", "aaabbb"},
		Rejected:    []string{"", "a", "b", "abb", "aab", "ba"},
	}
}
