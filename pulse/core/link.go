package core

// Link is a releasable capability over one segment of a stream chain.
// Release must be safe to call more than once.
type Link interface {
	Release()
}

// upstreamLink represents one operator registration on an upstream
// stream. Releasing it tears the upstream down only while no other
// consumer is registered there, then releases the next link in the
// chain (the second upstream of a two-input operator, when present).
type upstreamLink struct {
	count   func() int
	release func()
	next    Link
}

func (l *upstreamLink) Release() {
	if l.release != nil {
		// Another consumer on the upstream keeps it alive.
		if l.count() < 2 {
			l.release()
		}
		l.count, l.release = nil, nil
	}
	if l.next != nil {
		n := l.next
		l.next = nil
		n.Release()
	}
}

// Bag accumulates links and releases them together, tying the
// teardown of whole chains to one owner's lifetime.
type Bag struct {
	links []Link
}

// NewBag creates an empty link bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add retains l until the bag is released. Nil links are ignored.
func (b *Bag) Add(l Link) {
	if l == nil {
		return
	}
	b.links = append(b.links, l)
}

// Len reports the number of held links.
func (b *Bag) Len() int {
	return len(b.links)
}

// Release releases every held link in insertion order and empties the
// bag. Safe to call more than once.
func (b *Bag) Release() {
	links := b.links
	b.links = nil
	for _, l := range links {
		l.Release()
	}
}
