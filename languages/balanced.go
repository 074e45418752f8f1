package languages

import "github.com/atlekbai/pushdown"

const symOpen Symbol = "("

// Balanced recognizes balanced parentheses, including the empty word.
func Balanced() Language {
	const q State = "q"

	rules := pushdown.NewTable[State, Letter, Symbol]()
	rules.Configure(q).
		On('(', Bottom, q, symOpen, Bottom).
		On('(', symOpen, q, symOpen, symOpen).
		On(')', symOpen, q).
		OnEpsilon(Bottom, q)

	return Language{
		Name:        "balanced",
		Description: "balanced parentheses",
		Initial:     q,
		Stack:       []Symbol{Bottom},
		Rules:       rules,
		Accepted:    []string{"", "()", "(())", "()()", "(()())"},
		Rejected:    []string{"(", ")", ")(", "(()", "())"},
	}
}
