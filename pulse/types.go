// Package pulse provides a push-based reactive stream primitive: a
// typed conduit a producer emits values, one terminal error, or one
// completion into, observed by registered callbacks and reshaped by
// the operator subpackages. A released link bag tears down whole
// operator chains deterministically.
//
// This package is the primary user-facing API. The pulse/core
// subpackage contains the low-level engine that the operator packages
// build on.
package pulse

import "github.com/lguimbarda/min-pulse/pulse/core"

// Type aliases for core abstractions.
// These allow users to work with the library without importing core
// directly.
type (
	// Stream is a push-based value conduit with registration and
	// emission operations.
	Stream[T any] = core.Stream[T]

	// Hooks holds the optional callbacks of one observer registration.
	Hooks[T any] = core.Hooks[T]

	// Link is a releasable capability over one chain segment.
	Link = core.Link

	// Bag accumulates links and releases them together.
	Bag = core.Bag

	// Executor runs observer callbacks inline or on another context.
	Executor = core.Executor

	// State is a stream's lifecycle state.
	State = core.State
)

// Lifecycle states re-exported from core.
const (
	Open     = core.Open
	Finished = core.Finished
	Failed   = core.Failed
)

// New creates an empty open stream.
func New[T any]() *Stream[T] {
	return core.New[T]()
}

// Of creates a stream seeded with one value, buffered until the first
// value-capable observer registers.
func Of[T any](seed T) *Stream[T] {
	return core.Of(seed)
}

// NewBag creates an empty link bag.
func NewBag() *Bag {
	return core.NewBag()
}

// Stateful returns a stateful stream mirroring src's values and
// caching the latest one for synchronous read.
func Stateful[T any](src *Stream[T]) *core.Stateful[T] {
	dst := core.NewStateful[T]()
	core.Feed(src, dst.Stream, dst.Emit)
	return dst
}

// Pausable returns a pausable stream mirroring src's values subject
// to its own pause state, holding at most limit values while paused.
func Pausable[T any](src *Stream[T], limit int) *core.Pausable[T] {
	dst := core.NewPausable[T](limit)
	core.Feed(src, dst.Stream, dst.Emit)
	return dst
}
