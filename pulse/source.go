package pulse

import "github.com/lguimbarda/min-pulse/pulse/core"

// FromSlice creates a stream pre-loaded with items. With no observer
// registered yet the values sit in the pending buffer and replay, in
// order, to the first value-capable observer.
func FromSlice[T any](items []T) *Stream[T] {
	s := core.New[T]()
	for _, item := range items {
		s.Emit(item)
	}
	return s
}

// FromChannel creates a stream fed from ch by a pump goroutine; the
// stream finishes when ch closes. The pump is the stream's single
// writer, and it delivers on its own goroutine: register observers
// before the first send, or serialize externally.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	s := core.New[T]()
	go func() {
		for v := range ch {
			s.Emit(v)
		}
		s.Finish()
	}()
	return s
}
