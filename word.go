package pushdown

import "iter"

// Word is a forward-only, single-pass cursor over input symbols.
type Word[V any] interface {
	// Next returns the next symbol and advances the cursor. It returns false
	// once the input is exhausted.
	Next() (V, bool)
}

// sliceWord reads symbols from a slice.
type sliceWord[V any] struct {
	symbols []V
	pos     int
}

// Symbols returns a Word over the given symbols.
func Symbols[V any](symbols ...V) Word[V] {
	return &sliceWord[V]{symbols: symbols}
}

func (w *sliceWord[V]) Next() (V, bool) {
	if w.pos >= len(w.symbols) {
		var zero V
		return zero, false
	}
	v := w.symbols[w.pos]
	w.pos++
	return v, true
}

// seqWord pulls symbols lazily from an iterator.
type seqWord[V any] struct {
	next func() (V, bool)
	stop func()
	done bool
}

func newSeqWord[V any](seq iter.Seq[V]) *seqWord[V] {
	next, stop := iter.Pull(seq)
	return &seqWord[V]{next: next, stop: stop}
}

func (w *seqWord[V]) Next() (V, bool) {
	if w.done {
		var zero V
		return zero, false
	}
	v, ok := w.next()
	if !ok {
		w.close()
	}
	return v, ok
}

func (w *seqWord[V]) close() {
	if !w.done {
		w.done = true
		w.stop()
	}
}

// emptyWord is used when Build is given a nil Word.
type emptyWord[V any] struct{}

func (emptyWord[V]) Next() (V, bool) {
	var zero V
	return zero, false
}
