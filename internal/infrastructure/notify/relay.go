// Package notify carries new-entry events from the record use cases to the
// admin view. Delivery is fire-and-forget: no retry, no persistence, and a
// slow subscriber simply misses events.
package notify

import "sync"

// Notification is the event delivered to the admin view. ID is a millisecond
// timestamp used by the UI as an ephemeral toast handle.
type Notification struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Relay fans notifications out to subscriber channels.
type Relay struct {
	mu     sync.Mutex
	subs   map[chan Notification]struct{}
	buffer int
}

// NewRelay builds a relay whose subscriber channels buffer up to buffer
// events before dropping.
func NewRelay(buffer int) *Relay {
	if buffer <= 0 {
		buffer = 16
	}
	return &Relay{subs: map[chan Notification]struct{}{}, buffer: buffer}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the channel; it is safe to call more than once.
func (r *Relay) Subscribe() (<-chan Notification, func()) {
	ch := make(chan Notification, r.buffer)
	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, ch)
			r.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers n to every subscriber. Full buffers drop the event.
func (r *Relay) Publish(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subs {
		select {
		case ch <- n:
		default: // subscriber too slow, drop
		}
	}
}
