package notifier

import "sync"

// Notifier delivers the most recent published value to every subscriber.
// A new subscriber immediately receives the latest value, if one was ever
// published, and then every subsequent publish. Each subscription buffers a
// single element: a subscriber that falls behind only observes the newest
// value, older undelivered values are dropped.
type Notifier[T any] struct {
	mu       sync.Mutex
	latest   T
	hasValue bool
	nextID   int
	subs     map[int]chan T
}

// New creates a new notifier instance
func New[T any]() *Notifier[T] {
	return &Notifier[T]{
		subs: make(map[int]chan T),
	}
}

// Publish records v as the latest value and delivers it to all subscribers
func (n *Notifier[T]) Publish(v T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.latest = v
	n.hasValue = true

	for _, ch := range n.subs {
		select {
		case ch <- v:
		default:
			// Drop the stale value and retry with the fresh one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Subscribe registers a new subscriber. The returned function removes the
// subscription and closes the channel, it is safe to call more than once.
func (n *Notifier[T]) Subscribe() (<-chan T, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan T, 1)
	if n.hasValue {
		ch <- n.latest
	}
	n.subs[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(ch)
		}
	}

	return ch, unsubscribe
}

// Latest returns the most recent published value, if there is one
func (n *Notifier[T]) Latest() (T, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.latest, n.hasValue
}
