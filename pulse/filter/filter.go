// Package filter provides selection operators over pulse streams.
package filter

import "github.com/lguimbarda/min-pulse/pulse/core"

// Where returns a stream re-emitting only the values for which
// predicate is true. Non-matching values are silently dropped.
func Where[T any](src *core.Stream[T], predicate func(T) bool) *core.Stream[T] {
	dst := core.New[T]()
	return core.Feed(src, dst, func(v T) {
		if predicate(v) {
			dst.Emit(v)
		}
	})
}

// takeState counts the values still owed downstream.
type takeState struct {
	remaining int
}

// Take returns a stream passing through only the first n upstream
// values, then finishing. With n <= 0 the returned stream is already
// finished.
func Take[T any](src *core.Stream[T], n int) *core.Stream[T] {
	dst := core.New[T]()
	if n <= 0 {
		core.Feed(src, dst, func(T) {})
		dst.Finish()
		return dst
	}
	st := &takeState{remaining: n}
	return core.Feed(src, dst, func(v T) {
		if st.remaining == 0 {
			return
		}
		st.remaining--
		dst.Emit(v)
		if st.remaining == 0 {
			dst.Finish()
		}
	})
}
