package pushdown

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Runner executes an automaton over a single input word. A Runner is not safe
// for concurrent use; Runners built from the same Builder are independent.
//
// Once a terminal verdict has been reached every further call to Run returns
// that verdict without reading input, touching the stack or calling hooks.
type Runner[Q, V, S comparable] struct {
	state     Q
	stack     *Stack[S]
	word      Word[V]
	relation  Relation[Q, V, S]
	verdict   Verdict
	steps     int
	logger    *slog.Logger
	observers []Observer
	onStep    *stepEvent[Q, V, S]
	release   func()
}

// State returns the current state.
func (r *Runner[Q, V, S]) State() Q {
	return r.state
}

// Stack returns a copy of the current stack contents, bottom first.
func (r *Runner[Q, V, S]) Stack() []S {
	return r.stack.Items()
}

// Verdict returns the verdict of the last step, Processing before the first one.
func (r *Runner[Q, V, S]) Verdict() Verdict {
	return r.verdict
}

// Steps returns the number of steps evaluated so far.
func (r *Runner[Q, V, S]) Steps() int {
	return r.steps
}

// OnStep registers a hook called after every subsequent step.
func (r *Runner[Q, V, S]) OnStep(hook func(Step[Q, V, S])) {
	r.onStep.register(hook)
}

// Run evaluates a single step.
//
// The next input symbol is read (committing the cursor) and the stack top is
// popped. Empty input on an empty stack accepts. Otherwise the relation is
// queried with the symbol, or None at end of input, and the popped top: a
// missing rule rejects, a found rule moves the automaton and pushes the
// replacement so that Push[0] becomes the new top. Input left over an empty
// stack rejects.
func (r *Runner[Q, V, S]) Run() Verdict {
	if r.verdict.Terminal() {
		return r.verdict
	}

	input := None[V]()
	if v, ok := r.word.Next(); ok {
		input = Some(v)
	}
	top, hasTop := r.stack.Pop()

	r.steps++
	step := Step[Q, V, S]{
		Index:       r.steps,
		Source:      r.state,
		Destination: r.state,
		Input:       input,
	}
	if hasTop {
		step.Top = Some(top)
	}

	switch {
	case !hasTop && input.IsNone():
		step.Verdict = Accept
	case hasTop:
		move, ok := r.relation.Lookup(r.state, input, top)
		if !ok {
			step.Verdict = NotAccepting
			break
		}
		r.state = move.Next
		for i := len(move.Push) - 1; i >= 0; i-- {
			r.stack.Push(move.Push[i])
		}
		step.Destination = move.Next
		step.Push = slices.Clone(move.Push)
		step.Verdict = Processing
	default:
		step.Verdict = NotAccepting
	}

	r.verdict = step.Verdict
	r.record(step)
	return r.verdict
}

// record publishes a step to the logger, the observers and the hooks.
func (r *Runner[Q, V, S]) record(step Step[Q, V, S]) {
	r.logger.Debug("step",
		"index", step.Index,
		"state", step.Source,
		"input", step.Input,
		"top", step.Top,
		"next", step.Destination,
		"verdict", step.Verdict,
	)
	for _, o := range r.observers {
		o.StepObserved(step.Verdict)
	}
	r.onStep.invoke(step)

	if step.Verdict.Terminal() {
		r.logger.Debug("run finished", "verdict", step.Verdict, "steps", r.steps)
		for _, o := range r.observers {
			o.RunFinished(step.Verdict, r.steps)
		}
		r.Close()
	}
}

// Complete runs the automaton until it reaches a terminal verdict and returns
// true if the input was accepted. The Runner is spent afterwards.
//
// Complete does not return for relations that keep a run Processing forever;
// use CompleteWithin or CompleteCtx to bound execution.
func (r *Runner[Q, V, S]) Complete() bool {
	for r.Run() == Processing {
	}
	return r.verdict == Accept
}

// CompleteWithin runs at most maxSteps further steps. It returns a
// StepLimitError if the run is still Processing once the budget is spent.
func (r *Runner[Q, V, S]) CompleteWithin(maxSteps int) (bool, error) {
	if maxSteps <= 0 {
		return false, &ArgumentError{ParamName: "maxSteps", Message: "step budget must be positive"}
	}
	for range maxSteps {
		if r.Run().Terminal() {
			return r.verdict == Accept, nil
		}
	}
	return false, &StepLimitError{Limit: maxSteps, State: r.state, Depth: r.stack.Len()}
}

// CompleteCtx runs the automaton to completion, checking ctx before every step.
func (r *Runner[Q, V, S]) CompleteCtx(ctx context.Context) (bool, error) {
	for !r.verdict.Terminal() {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		r.Run()
	}
	return r.verdict == Accept, nil
}

// Close releases the input iterator of a Runner created with BuildSeq. It is
// safe to call more than once and is called automatically on a terminal verdict.
func (r *Runner[Q, V, S]) Close() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
}

// String returns a string representation of the Runner.
func (r *Runner[Q, V, S]) String() string {
	return fmt.Sprintf("Runner { State = %v, Stack = %v, Verdict = %v }", r.state, r.stack.Items(), r.verdict)
}
