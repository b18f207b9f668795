package core

// Executor runs units of work either immediately on the caller's
// goroutine or scheduled on some other context. Implementations must
// preserve FIFO order among units submitted to the same executor;
// per-observer delivery order relies on that contract. Submission is
// fire-and-forget - none of the engine's operations block on it.
//
// The engine does not implement an asynchronous executor itself; it
// is a caller-supplied collaborator.
type Executor interface {
	Do(fn func())
}

// Inline runs work immediately on the calling goroutine. Registering
// with a nil executor is equivalent.
type Inline struct{}

func (Inline) Do(fn func()) { fn() }

// record is one registered observer: the optional callbacks plus the
// executor its deliveries are dispatched on. Records are held by the
// owning stream for its whole lifetime; there is no per-record
// removal, teardown happens at the chain level through links.
type record[T any] struct {
	onValue  func(T)
	onError  func(error)
	onFinish func()
	via      Executor
}

func (r *record[T]) value(v T) {
	if r.onValue == nil {
		return
	}
	if r.via == nil {
		r.onValue(v)
		return
	}
	r.via.Do(func() { r.onValue(v) })
}

func (r *record[T]) fail(err error) {
	if r.onError == nil {
		return
	}
	if r.via == nil {
		r.onError(err)
		return
	}
	r.via.Do(func() { r.onError(err) })
}

func (r *record[T]) finish() {
	if r.onFinish == nil {
		return
	}
	if r.via == nil {
		r.onFinish()
		return
	}
	r.via.Do(r.onFinish)
}
