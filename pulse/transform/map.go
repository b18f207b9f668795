// Package transform provides per-value shape operators over pulse
// streams.
package transform

import "github.com/lguimbarda/min-pulse/pulse/core"

// Map returns a stream emitting fn(v) for every upstream value.
func Map[A, B any](src *core.Stream[A], fn func(A) B) *core.Stream[B] {
	dst := core.New[B]()
	return core.Feed(src, dst, func(v A) {
		dst.Emit(fn(v))
	})
}

// FlatMap returns a stream emitting the result of fn only when ok is
// true; values for which fn reports false are silently skipped. A
// skip never fails or finishes the stream.
func FlatMap[A, B any](src *core.Stream[A], fn func(A) (B, bool)) *core.Stream[B] {
	dst := core.New[B]()
	return core.Feed(src, dst, func(v A) {
		if out, ok := fn(v); ok {
			dst.Emit(out)
		}
	})
}
