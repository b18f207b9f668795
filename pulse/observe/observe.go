// Package observe provides the diagnostic side-channel for pulse
// streams: passthrough taps, tagged debug sinks, and OpenTelemetry
// instrument wiring. Observation never alters the data contract.
package observe

import (
	"fmt"
	"io"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Sink receives diagnostic events reported by Debug streams.
type Sink interface {
	Event(tag string, value any)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(tag string, value any)

func (f SinkFunc) Event(tag string, value any) { f(tag, value) }

// Writer returns a sink printing one line per event to w.
func Writer(w io.Writer) Sink {
	return SinkFunc(func(tag string, value any) {
		fmt.Fprintf(w, "[%s] %v\n", tag, value)
	})
}

// Tap returns a passthrough stream invoking fn for every value before
// re-emitting it.
func Tap[T any](src *core.Stream[T], fn func(T)) *core.Stream[T] {
	dst := core.New[T]()
	return core.Feed(src, dst, func(v T) {
		fn(v)
		dst.Emit(v)
	})
}

// Debug returns a passthrough stream reporting every value to sink
// under tag. A nil sink degrades to a plain passthrough.
func Debug[T any](src *core.Stream[T], tag string, sink Sink) *core.Stream[T] {
	if sink == nil {
		return Tap(src, func(T) {})
	}
	return Tap(src, func(v T) { sink.Event(tag, v) })
}
