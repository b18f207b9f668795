package core

// variant tags the behavior consulted at the emission entry point.
// Variants are composed into the one Stream core rather than layered
// as subtypes, so the terminal state machine and buffering logic stay
// in a single place.
type variant uint8

const (
	plainVariant variant = iota
	statefulVariant
	pausableVariant
)

// Stateful is a Stream that additionally caches the most recently
// accepted value for synchronous read. The cache updates on every
// accepted emission, with or without observers registered.
type Stateful[T any] struct {
	*Stream[T]
}

// NewStateful creates an empty open stateful stream.
func NewStateful[T any]() *Stateful[T] {
	return &Stateful[T]{Stream: &Stream[T]{variant: statefulVariant}}
}

// Last returns the most recently accepted value. ok is false before
// the first accepted emission.
func (s *Stateful[T]) Last() (value T, ok bool) {
	return s.last, s.hasLast
}

// Pausable is a Stream that, while paused, holds incoming values in a
// bounded sliding window and replays them in order on resume.
type Pausable[T any] struct {
	*Stream[T]
}

// NewPausable creates an empty open pausable stream. The window holds
// at most limit values; while paused and full, the oldest value is
// evicted to admit the newest. A limit below 1 is treated as 1.
func NewPausable[T any](limit int) *Pausable[T] {
	if limit < 1 {
		limit = 1
	}
	return &Pausable[T]{Stream: &Stream[T]{variant: pausableVariant, limit: limit}}
}

// Paused reports whether the stream is currently buffering.
func (p *Pausable[T]) Paused() bool {
	return p.paused
}

// SetPaused toggles buffering. The transition is edge-triggered:
// setting the current value again is a no-op. Resuming drains the
// window oldest-first through standard delivery, then clears it.
func (p *Pausable[T]) SetPaused(paused bool) {
	if p.paused == paused {
		return
	}
	p.paused = paused
	if paused {
		return
	}
	held := p.held
	p.held = nil
	for _, v := range held {
		if p.state != Open {
			break
		}
		p.deliver(v)
	}
}

// hold appends v to the pausable window, evicting the oldest value
// once the window is full. The window length never exceeds the limit.
func (s *Stream[T]) hold(v T) {
	if len(s.held) >= s.limit {
		copy(s.held, s.held[1:])
		s.held[len(s.held)-1] = v
		return
	}
	s.held = append(s.held, v)
}
