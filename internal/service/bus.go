package service

import "sync"

// Bus is the process-wide change notification broadcast. Publish carries no
// payload; observers re-query state themselves. Delivery is synchronous
// with respect to the triggering mutation, so observers always see the
// post-mutation state.
type Bus struct {
	mu   sync.Mutex
	subs []func()
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers an observer for change notifications.
func (b *Bus) Subscribe(observe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, observe)
}

// Publish notifies every observer, in registration order.
func (b *Bus) Publish() {
	b.mu.Lock()
	observers := append([]func(){}, b.subs...)
	b.mu.Unlock()

	for _, observe := range observers {
		observe()
	}
}
