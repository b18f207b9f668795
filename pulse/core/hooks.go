package core

// Hooks holds the optional callbacks of one observer registration.
// All fields are optional - nil means no interest in that event. Via,
// when set, names the executor the callbacks are dispatched on; when
// nil they run inline on the emitting goroutine.
type Hooks[T any] struct {
	OnValue  func(T)     // Value emitted
	OnError  func(error) // Stream failed
	OnFinish func()      // Stream completed
	Via      Executor    // Where callbacks run; nil means inline
}

// Observe appends one observer record built from h and returns the
// stream for further chained registration. A record with no callbacks
// is accepted and simply never fires.
//
// If h carries a value callback, any pending pre-subscription values
// are replayed first, in original emission order, to every
// value-capable observer, and the buffer is cleared after the full
// drain. Replay is synchronous within the call unless a record names
// an executor, in which case it follows the same dispatch path as
// live emissions.
func (s *Stream[T]) Observe(h Hooks[T]) *Stream[T] {
	r := &record[T]{
		onValue:  h.OnValue,
		onError:  h.OnError,
		onFinish: h.OnFinish,
		via:      h.Via,
	}
	s.observers = append(s.observers, r)
	if h.OnValue != nil && len(s.pending) > 0 {
		buffered := s.pending
		s.pending = nil
		for _, v := range buffered {
			for _, rec := range s.observers {
				rec.value(v)
			}
		}
	}
	return s
}

// OnValue registers a value callback that runs inline on the emitting
// goroutine.
func (s *Stream[T]) OnValue(fn func(T)) *Stream[T] {
	return s.Observe(Hooks[T]{OnValue: fn})
}

// OnValueVia registers a value callback dispatched on exec.
func (s *Stream[T]) OnValueVia(exec Executor, fn func(T)) *Stream[T] {
	return s.Observe(Hooks[T]{OnValue: fn, Via: exec})
}

// OnError registers an error callback that runs inline on the failing
// goroutine.
func (s *Stream[T]) OnError(fn func(error)) *Stream[T] {
	return s.Observe(Hooks[T]{OnError: fn})
}

// OnErrorVia registers an error callback dispatched on exec.
func (s *Stream[T]) OnErrorVia(exec Executor, fn func(error)) *Stream[T] {
	return s.Observe(Hooks[T]{OnError: fn, Via: exec})
}

// OnFinish registers a completion callback that runs inline on the
// finishing goroutine.
func (s *Stream[T]) OnFinish(fn func()) *Stream[T] {
	return s.Observe(Hooks[T]{OnFinish: fn})
}

// OnFinishVia registers a completion callback dispatched on exec.
func (s *Stream[T]) OnFinishVia(exec Executor, fn func()) *Stream[T] {
	return s.Observe(Hooks[T]{OnFinish: fn, Via: exec})
}
