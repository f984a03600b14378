package eventbus

import "sync"

// Event is the closed set of things that happen in a planning session:
// task list mutations and completed scheduling runs. The marker method
// keeps arbitrary values off the bus.
type Event interface {
	event()
}

// Publisher is the write side of the bus, all the API handlers need.
type Publisher interface {
	Publish(Event)
}

// Bus fans published events out to every live subscriber. Delivery is
// non-blocking: a subscriber that stops draining loses events rather
// than stalling the publisher.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Publish delivers the event to all current subscribers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a subscriber and returns its channel together with
// a cancel function. Cancelling closes the channel; after Close the
// returned channel is already closed.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
		b.mu.Unlock()
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			if !b.closed {
				close(sub)
			}
		}
	}
	return ch, cancel
}

// Close closes every subscriber channel. Publishing afterwards is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}
