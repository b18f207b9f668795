// Package core defines the push-based stream engine: observer
// registration, emission and the terminal state machine,
// pre-subscription buffering, and the ownership links that tear down
// operator chains. The operator packages build on these primitives.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other pulse packages.
package core

// State describes where a stream is in its lifecycle. A stream starts
// Open and leaves Open at most once; Finished and Failed are terminal
// and mutually exclusive.
type State uint8

const (
	Open State = iota
	Finished
	Failed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stream is a typed conduit a single producer pushes values, one
// terminal error, or one completion into, observed by the callbacks
// registered through OnValue, OnError, OnFinish, or Observe.
//
// Values emitted before any observer is registered accumulate in a
// pending buffer and are replayed, in original order, when the first
// value-capable observer registers. The buffer has no size cap: a
// long-lived stream that never gains an observer grows without bound.
//
// A Stream performs no internal locking. Registration and emission
// must be serialized by the caller; concurrent producers writing into
// the same stream without external synchronization are undefined
// behavior.
type Stream[T any] struct {
	observers []*record[T]
	pending   []T
	state     State
	parent    Link

	// Variant behavior, consulted at the emission entry point.
	variant variant
	last    T
	hasLast bool
	paused  bool
	held    []T
	limit   int
}

// New creates an empty open stream.
func New[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Of creates a stream seeded with one value. The seed is routed
// through Emit, so it sits in the pending buffer until the first
// value-capable observer registers.
func Of[T any](seed T) *Stream[T] {
	s := New[T]()
	s.Emit(seed)
	return s
}

// State reports the stream's lifecycle state.
func (s *Stream[T]) State() State {
	return s.state
}

// Emit pushes a value into the stream. With at least one observer
// registered the value is delivered through every value-capable
// record's dispatch path; with none it is appended to the pending
// buffer. Emit is a no-op once the stream has finished or failed.
func (s *Stream[T]) Emit(v T) {
	if s.state != Open {
		return
	}
	switch s.variant {
	case statefulVariant:
		s.last, s.hasLast = v, true
	case pausableVariant:
		if s.paused {
			s.hold(v)
			return
		}
	}
	s.deliver(v)
}

func (s *Stream[T]) deliver(v T) {
	if len(s.observers) == 0 {
		s.pending = append(s.pending, v)
		return
	}
	for _, r := range s.observers {
		r.value(v)
	}
}

// Fail closes the stream with err and notifies every error-capable
// observer. An observer without an error callback never sees the
// error; that is the contract, not a defect. All later emissions of
// any kind are no-ops.
func (s *Stream[T]) Fail(err error) {
	if s.state != Open {
		return
	}
	s.state = Failed
	for _, r := range s.observers {
		r.fail(err)
	}
}

// Finish closes the stream and notifies every finish-capable
// observer. All later emissions of any kind are no-ops.
func (s *Stream[T]) Finish() {
	if s.state != Open {
		return
	}
	s.state = Finished
	for _, r := range s.observers {
		r.finish()
	}
}

// Release detaches the stream from its upstream chain. Each upstream
// is torn down only while no other consumer is registered on it, so
// unwinding stops at a node a second branch still depends on. Safe to
// call more than once.
func (s *Stream[T]) Release() {
	if s.parent == nil {
		return
	}
	p := s.parent
	s.parent = nil
	p.Release()
}

func (s *Stream[T]) observerCount() int {
	return len(s.observers)
}

// Feed wires dst downstream of src: deliver runs for every src value,
// and dst takes ownership of the registration so that releasing dst
// unwinds src when src has no other consumer. Feeding dst from a
// second upstream prepends to its ownership chain, which is how
// two-input operators linearize teardown of both registrations.
//
// Registering deliver drains src's pending buffer like any other
// value-capable registration.
func Feed[A, B any](src *Stream[A], dst *Stream[B], deliver func(A)) *Stream[B] {
	dst.parent = &upstreamLink{
		count:   src.observerCount,
		release: src.Release,
		next:    dst.parent,
	}
	src.OnValue(deliver)
	return dst
}
