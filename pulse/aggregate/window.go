// Package aggregate provides accumulation operators over pulse
// streams: bounded sliding windows and running folds.
package aggregate

import "github.com/lguimbarda/min-pulse/pulse/core"

// windowState is the window operator's buffer. Length never exceeds
// the limit; the oldest value is evicted once the window is full.
type windowState[T any] struct {
	values []T
	limit  int
}

func (w *windowState[T]) push(v T) {
	if len(w.values) >= w.limit {
		copy(w.values, w.values[1:])
		w.values[len(w.values)-1] = v
		return
	}
	w.values = append(w.values, v)
}

func (w *windowState[T]) snapshot() []T {
	out := make([]T, len(w.values))
	copy(out, w.values)
	return out
}

// Window returns a stream emitting, for every upstream value, a
// snapshot of the up-to-limit most recent values, oldest first. Each
// snapshot is an independent copy. A limit below 1 is treated as 1.
func Window[T any](src *core.Stream[T], limit int) *core.Stream[[]T] {
	if limit < 1 {
		limit = 1
	}
	dst := core.New[[]T]()
	st := &windowState[T]{limit: limit}
	return core.Feed(src, dst, func(v T) {
		st.push(v)
		dst.Emit(st.snapshot())
	})
}

// reduceState holds the running accumulation of a fold.
type reduceState[B any] struct {
	acc B
}

// Reduce returns a stream emitting each successive accumulation of fn
// over the upstream values, starting from seed.
func Reduce[A, B any](src *core.Stream[A], seed B, fn func(B, A) B) *core.Stream[B] {
	dst := core.New[B]()
	st := &reduceState[B]{acc: seed}
	return core.Feed(src, dst, func(v A) {
		st.acc = fn(st.acc, v)
		dst.Emit(st.acc)
	})
}
