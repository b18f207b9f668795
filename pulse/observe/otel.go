package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Counters bundles the instruments Instrument records to.
type Counters struct {
	Values   metric.Int64Counter
	Errors   metric.Int64Counter
	Finishes metric.Int64Counter
}

// NewCounters creates the standard pulse instruments on meter.
func NewCounters(meter metric.Meter) (Counters, error) {
	values, err := meter.Int64Counter("pulse.values",
		metric.WithDescription("count of emitted values"))
	if err != nil {
		return Counters{}, err
	}
	errs, err := meter.Int64Counter("pulse.errors",
		metric.WithDescription("count of stream failures"))
	if err != nil {
		return Counters{}, err
	}
	finishes, err := meter.Int64Counter("pulse.finishes",
		metric.WithDescription("count of stream completions"))
	if err != nil {
		return Counters{}, err
	}
	return Counters{Values: values, Errors: errs, Finishes: finishes}, nil
}

// Instrument registers a metrics observer on src recording every
// value, failure and completion to c, and returns src for chaining.
// Like any value-capable registration it drains src's pending buffer
// and counts as a consumer for chain-teardown purposes.
func Instrument[T any](ctx context.Context, src *core.Stream[T], c Counters) *core.Stream[T] {
	return src.Observe(core.Hooks[T]{
		OnValue:  func(T) { c.Values.Add(ctx, 1) },
		OnError:  func(error) { c.Errors.Add(ctx, 1) },
		OnFinish: func() { c.Finishes.Add(ctx, 1) },
	})
}
