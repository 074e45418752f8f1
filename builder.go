package pushdown

import "iter"

// Builder holds the static configuration of an automaton and manufactures
// independent Runners, one per input word.
type Builder[Q, V, S comparable] struct {
	initialState Q
	initialStack *Stack[S]
	relation     Relation[Q, V, S]
	options      options
	onStep       *stepEvent[Q, V, S]
}

// NewBuilder creates a Builder. stack lists the initial stack contents bottom
// first. No validation is performed; unreachable or dead rules are not errors.
//
// A Table relation is cloned so that later edits to the caller's map never
// reach a Runner. Any other Relation is shared and must not change. A nil
// relation has no rules.
func NewBuilder[Q, V, S comparable](
	initialState Q,
	stack []S,
	relation Relation[Q, V, S],
	opts ...BuilderOption,
) *Builder[Q, V, S] {
	switch r := relation.(type) {
	case nil:
		relation = NewTable[Q, V, S]()
	case Table[Q, V, S]:
		relation = r.Clone()
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder[Q, V, S]{
		initialState: initialState,
		initialStack: NewStack(stack...),
		relation:     relation,
		options:      o,
		onStep:       &stepEvent[Q, V, S]{},
	}
}

// InitialState returns the state every Runner starts in.
func (b *Builder[Q, V, S]) InitialState() Q {
	return b.initialState
}

// InitialStack returns a copy of the initial stack contents, bottom first.
func (b *Builder[Q, V, S]) InitialStack() []S {
	return b.initialStack.Items()
}

// OnStep registers a hook called after every step of Runners built afterwards.
func (b *Builder[Q, V, S]) OnStep(hook func(Step[Q, V, S])) {
	b.onStep.register(hook)
}

// Build returns a fresh Runner reading from word. A nil word is empty input.
func (b *Builder[Q, V, S]) Build(word Word[V]) *Runner[Q, V, S] {
	if word == nil {
		word = emptyWord[V]{}
	}
	r := &Runner[Q, V, S]{
		state:     b.initialState,
		stack:     b.initialStack.Clone(),
		word:      word,
		relation:  b.relation,
		logger:    b.options.logger,
		observers: b.options.observers,
		onStep:    &stepEvent[Q, V, S]{handlers: b.onStep.snapshot()},
	}
	return r
}

// BuildSymbols returns a fresh Runner reading the given symbols.
func (b *Builder[Q, V, S]) BuildSymbols(symbols ...V) *Runner[Q, V, S] {
	return b.Build(Symbols(symbols...))
}

// BuildSeq returns a fresh Runner that pulls symbols lazily from seq. The
// iterator is released when the Runner reaches a terminal verdict or is closed.
func (b *Builder[Q, V, S]) BuildSeq(seq iter.Seq[V]) *Runner[Q, V, S] {
	word := newSeqWord(seq)
	r := b.Build(word)
	r.release = word.close
	return r
}

// Accepts builds a Runner for symbols and drives it to completion.
func (b *Builder[Q, V, S]) Accepts(symbols ...V) bool {
	return b.BuildSymbols(symbols...).Complete()
}
