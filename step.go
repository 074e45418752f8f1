package pushdown

import (
	"fmt"
	"sync"
)

// Step describes one evaluated step of a Runner.
type Step[Q, V, S comparable] struct {
	// Index is the 1-based position of the step within the run.
	Index int

	// Source is the state the step started from.
	Source Q

	// Destination is the state after the step. It equals Source unless a rule fired.
	Destination Q

	// Input is the input symbol read by the step, None at end of input.
	Input Option[V]

	// Top is the popped stack symbol, None when the stack was empty.
	Top Option[S]

	// Push holds the symbols pushed by the fired rule, Push[0] on top.
	Push []S

	// Verdict is the result of the step.
	Verdict Verdict
}

// Fired returns true if a rule of the relation was applied by this step.
func (s Step[Q, V, S]) Fired() bool {
	return s.Verdict == Processing
}

// String returns a compact representation of the step.
func (s Step[Q, V, S]) String() string {
	if !s.Fired() {
		return fmt.Sprintf("#%d (%v, %v, %v) -> %v", s.Index, s.Source, s.Input, s.Top, s.Verdict)
	}
	return fmt.Sprintf("#%d (%v, %v, %v) -> (%v, %v)", s.Index, s.Source, s.Input, s.Top, s.Destination, s.Push)
}

// stepEvent dispatches steps to registered hooks.
type stepEvent[Q, V, S comparable] struct {
	handlers []func(Step[Q, V, S])
	mutex    sync.RWMutex
}

// register adds a handler to the event.
func (e *stepEvent[Q, V, S]) register(handler func(Step[Q, V, S])) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.handlers = append(e.handlers, handler)
}

// snapshot returns a copy of the registered handlers.
func (e *stepEvent[Q, V, S]) snapshot() []func(Step[Q, V, S]) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return append([]func(Step[Q, V, S]){}, e.handlers...)
}

// invoke calls all registered handlers. Handlers may register new hooks;
// those only see later steps.
func (e *stepEvent[Q, V, S]) invoke(step Step[Q, V, S]) {
	for _, handler := range e.snapshot() {
		handler(step)
	}
}
