// Package timing provides time-aware operators over pulse streams.
//
// Unlike the rest of the library these operators emit from timer
// goroutines, so downstream consumers must tolerate delivery off the
// producer's goroutine or serialize externally. The clock is
// injectable for deterministic tests.
package timing

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// debounceState tracks the value owed downstream and the timer that
// will deliver it.
type debounceState[T any] struct {
	mu      sync.Mutex
	pending T
	timer   *clock.Timer
}

// Debounce returns a stream emitting a value only after d has elapsed
// without another upstream value; earlier values within a burst are
// superseded. A nil clk uses the wall clock.
func Debounce[T any](src *core.Stream[T], d time.Duration, clk clock.Clock) *core.Stream[T] {
	if clk == nil {
		clk = clock.New()
	}
	dst := core.New[T]()
	st := &debounceState[T]{}
	return core.Feed(src, dst, func(v T) {
		st.mu.Lock()
		st.pending = v
		if st.timer != nil {
			st.timer.Stop()
		}
		st.timer = clk.AfterFunc(d, func() {
			st.mu.Lock()
			out := st.pending
			st.mu.Unlock()
			dst.Emit(out)
		})
		st.mu.Unlock()
	})
}

// throttleState remembers when the last value was let through.
type throttleState struct {
	lastEmit time.Time
}

// Throttle returns a stream limiting emissions to at most one per d:
// the first value passes through immediately and later values inside
// the interval are dropped. A nil clk uses the wall clock.
func Throttle[T any](src *core.Stream[T], d time.Duration, clk clock.Clock) *core.Stream[T] {
	if clk == nil {
		clk = clock.New()
	}
	dst := core.New[T]()
	st := &throttleState{}
	return core.Feed(src, dst, func(v T) {
		now := clk.Now()
		if !st.lastEmit.IsZero() && now.Sub(st.lastEmit) < d {
			return
		}
		st.lastEmit = now
		dst.Emit(v)
	})
}
