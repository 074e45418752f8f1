package languages

import "github.com/atlekbai/pushdown"

// Palindrome recognizes w c wᴿ for w over {a, b}: the letters before the
// centre marker c are pushed, the letters after it must pop them in reverse.
func Palindrome() Language {
	const (
		pushing State = "push"
		popping State = "pop"
	)
	letters := map[Letter]Symbol{'a': "A", 'b': "B"}
	tops := []Symbol{Bottom, "A", "B"}

	rules := pushdown.NewTable[State, Letter, Symbol]()
	push := rules.Configure(pushing)
	for _, top := range tops {
		for letter, sym := range letters {
			push.On(letter, top, pushing, sym, top)
		}
		push.On('c', top, popping, top)
	}

	pop := rules.Configure(popping)
	for letter, sym := range letters {
		pop.On(letter, sym, popping)
	}
	pop.OnEpsilon(Bottom, popping)

	return Language{
		Name:        "wcwr",
		Description: "w c wᴿ for w over {a, b}",
		Initial:     pushing,
		Stack:       []Symbol{Bottom},
		Rules:       rules,
		Accepted:    []string{"c", "aca", "abcba", "abbcbba"},
		Rejected:    []string{"", "ab", "acb", "abcab", "acaa", "cc"},
	}
}
