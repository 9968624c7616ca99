package editor

// Bus is a synchronous publish/subscribe channel for one family of messages.
// Publish calls every subscriber in subscription order before returning; there
// is no queueing, batching or reordering. The zero value is ready to use.
//
// A Bus is owned by the GUI goroutine and is not safe for concurrent use.
type Bus[E any] struct {
	subs []*subscriber[E]
}

type subscriber[E any] struct {
	fn   func(E)
	gone bool
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (b *Bus[E]) Subscribe(fn func(E)) (unsubscribe func()) {
	s := &subscriber[E]{fn: fn}
	b.subs = append(b.subs, s)
	return func() {
		if s.gone {
			return
		}
		s.gone = true
		// copy-on-write, so that an ongoing Publish keeps iterating over the
		// slice it started with
		subs := make([]*subscriber[E], 0, len(b.subs))
		for _, o := range b.subs {
			if o != s {
				subs = append(subs, o)
			}
		}
		b.subs = subs
	}
}

// Publish delivers msg to all current subscribers. Subscribers added during
// delivery receive only later messages; subscribers removed during delivery
// are not called anymore.
func (b *Bus[E]) Publish(msg E) {
	for _, s := range b.subs {
		if !s.gone {
			s.fn(msg)
		}
	}
}

// Len returns the number of subscribers.
func (b *Bus[E]) Len() int { return len(b.subs) }
