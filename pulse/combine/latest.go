// Package combine provides operators that join two pulse streams into
// one.
package combine

import "github.com/lguimbarda/min-pulse/pulse/core"

// Pair carries the latest values seen from two streams. HasFirst and
// HasSecond stay false until the corresponding side has emitted; no
// synthetic defaults are invented for an unseen side.
type Pair[A, B any] struct {
	First     A
	Second    B
	HasFirst  bool
	HasSecond bool
}

// latestState is the combine operator's view of both sides.
type latestState[A, B any] struct {
	pair Pair[A, B]
}

// Latest returns a stream emitting the pair of latest values whenever
// either input emits. Releasing the returned stream unwinds the
// registrations on both inputs.
func Latest[A, B any](a *core.Stream[A], b *core.Stream[B]) *core.Stream[Pair[A, B]] {
	dst := core.New[Pair[A, B]]()
	st := &latestState[A, B]{}
	core.Feed(a, dst, func(v A) {
		st.pair.First, st.pair.HasFirst = v, true
		dst.Emit(st.pair)
	})
	core.Feed(b, dst, func(v B) {
		st.pair.Second, st.pair.HasSecond = v, true
		dst.Emit(st.pair)
	})
	return dst
}

// Merge returns a stream interleaving the values of both inputs in
// arrival order. Releasing the returned stream unwinds the
// registrations on both inputs.
func Merge[T any](a, b *core.Stream[T]) *core.Stream[T] {
	dst := core.New[T]()
	core.Feed(a, dst, dst.Emit)
	core.Feed(b, dst, dst.Emit)
	return dst
}
