// Package pulsetest provides helpers for testing pulse streams.
package pulsetest

import "github.com/lguimbarda/min-pulse/pulse/core"

// Recorder captures everything delivered to one observer
// registration: values in delivery order, failures, and completions.
type Recorder[T any] struct {
	values   []T
	errs     []error
	finishes int
}

// NewRecorder creates an unattached recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Attach registers a new recorder on s and returns it.
func Attach[T any](s *core.Stream[T]) *Recorder[T] {
	r := NewRecorder[T]()
	s.Observe(r.Hooks())
	return r
}

// Hooks returns the observer registration that feeds this recorder.
func (r *Recorder[T]) Hooks() core.Hooks[T] {
	return core.Hooks[T]{
		OnValue:  func(v T) { r.values = append(r.values, v) },
		OnError:  func(err error) { r.errs = append(r.errs, err) },
		OnFinish: func() { r.finishes++ },
	}
}

// Values returns the recorded values in delivery order.
func (r *Recorder[T]) Values() []T {
	return r.values
}

// Errs returns the recorded failures in delivery order.
func (r *Recorder[T]) Errs() []error {
	return r.errs
}

// Finished reports whether completion was delivered.
func (r *Recorder[T]) Finished() bool {
	return r.finishes > 0
}

// FinishCount returns how many times completion was delivered. More
// than one indicates a terminal-state bug in the stream under test.
func (r *Recorder[T]) FinishCount() int {
	return r.finishes
}

// Queue is a FIFO executor that holds submitted work until Drain
// runs it, giving tests deterministic control over asynchronous
// delivery.
type Queue struct {
	work []func()
}

// NewQueue creates an empty queue executor.
func NewQueue() *Queue {
	return &Queue{}
}

// Do enqueues fn without running it.
func (q *Queue) Do(fn func()) {
	q.work = append(q.work, fn)
}

// Len reports the number of pending units.
func (q *Queue) Len() int {
	return len(q.work)
}

// Drain runs pending work in submission order, including units
// enqueued by the drained functions themselves.
func (q *Queue) Drain() {
	for len(q.work) > 0 {
		fn := q.work[0]
		q.work = q.work[1:]
		fn()
	}
}
