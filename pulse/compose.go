package pulse

// Operator transforms one stream into a derived stream wired to it.
type Operator[IN, OUT any] func(*Stream[IN]) *Stream[OUT]

// Pipe applies a series of same-type operators to src, in order from
// left to right, returning the final stream. With no operators it
// returns src unchanged.
func Pipe[T any](src *Stream[T], ops ...Operator[T, T]) *Stream[T] {
	out := src
	for _, op := range ops {
		out = op(out)
	}
	return out
}

// Apply applies a single operator to a stream. Equivalent to op(src)
// but reads left-to-right.
func Apply[IN, OUT any](src *Stream[IN], op Operator[IN, OUT]) *Stream[OUT] {
	return op(src)
}
