// Package languages defines ready-made pushdown automata over letters.
package languages

import (
	"iter"
	"slices"
	"strings"

	"github.com/atlekbai/pushdown"
)

// State is a control state of a built-in automaton.
type State string

// Symbol is a stack symbol of a built-in automaton.
type Symbol string

// Letter is an input symbol.
type Letter rune

func (l Letter) String() string {
	return string(l)
}

// Bottom is the bottom-of-stack marker used by every built-in automaton.
const Bottom Symbol = "Z"

// Language is a named automaton definition.
type Language struct {
	// Name identifies the language on the command line.
	Name string

	// Description is a one-line summary of the recognized words.
	Description string

	// Initial is the initial state.
	Initial State

	// Stack is the initial stack, bottom first.
	Stack []Symbol

	// Rules is the transition relation.
	Rules pushdown.Table[State, Letter, Symbol]

	// Accepted and Rejected list sample words.
	Accepted []string
	Rejected []string
}

// Result is the outcome of recognizing one word.
type Result struct {
	Word     string
	Accepted bool
	Verdict  pushdown.Verdict
	Steps    int
	Trace    []string
}

// Builder returns a Builder for the language.
func (l Language) Builder(opts ...pushdown.BuilderOption) *pushdown.Builder[State, Letter, Symbol] {
	return pushdown.NewBuilder[State, Letter, Symbol](l.Initial, l.Stack, l.Rules, opts...)
}

// Recognize runs word through the automaton. A positive maxSteps bounds the
// run and a pushdown.StepLimitError is returned when it is exceeded.
func (l Language) Recognize(word string, maxSteps int, opts ...pushdown.BuilderOption) (Result, error) {
	result := Result{Word: word}

	r := l.Builder(opts...).BuildSeq(Letters(word))
	defer r.Close()
	r.OnStep(func(step pushdown.Step[State, Letter, Symbol]) {
		result.Trace = append(result.Trace, step.String())
	})

	var err error
	if maxSteps > 0 {
		result.Accepted, err = r.CompleteWithin(maxSteps)
	} else {
		result.Accepted = r.Complete()
	}
	result.Verdict = r.Verdict()
	result.Steps = r.Steps()
	return result, err
}

// Describe returns the rules of the language, one per line.
func (l Language) Describe() []string {
	info := l.Rules.Info()
	lines := make([]string, len(info.Rules))
	for i, rule := range info.Rules {
		lines[i] = rule.String()
	}
	return lines
}

// Letters yields the runes of word as input letters.
func Letters(word string) iter.Seq[Letter] {
	return func(yield func(Letter) bool) {
		for _, r := range word {
			if !yield(Letter(r)) {
				return
			}
		}
	}
}

var registry = []func() Language{
	AnBn,
	AnBnSentinel,
	Balanced,
	Palindrome,
}

// All returns every built-in language ordered by name.
func All() []Language {
	all := make([]Language, 0, len(registry))
	for _, def := range registry {
		all = append(all, def())
	}
	slices.SortFunc(all, func(a, b Language) int {
		return strings.Compare(a.Name, b.Name)
	})
	return all
}

// Names returns the names of all built-in languages.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Name
	}
	return names
}

// Lookup returns the built-in language with the given name.
func Lookup(name string) (Language, error) {
	for _, l := range All() {
		if l.Name == name {
			return l, nil
		}
	}
	return Language{}, &pushdown.ArgumentError{
		ParamName: "name",
		Message:   "unknown language '" + name + "'; available: " + strings.Join(Names(), ", "),
	}
}
