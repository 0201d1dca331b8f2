// Package push is the in-process channel for real-time events, addressed by
// shopkeeper id. Each connected client subscribes to its own shopkeeper's
// stream; publishing to a shopkeeper with no subscribers is a no-op.
package push

import "sync"

// Event is a named payload delivered to a shopkeeper's subscribers.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

const subscriberBuffer = 16

// Hub fans events out to per-shopkeeper subscriber channels. Sends never
// block: a subscriber that falls behind by more than its buffer loses the
// oldest-undelivered events, which is acceptable because every notification
// is also persisted.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a listener for a shopkeeper's events. The returned
// cancel func must be called when the listener goes away; it closes the
// channel.
func (h *Hub) Subscribe(shopkeeperID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	set, ok := h.subs[shopkeeperID]
	if !ok {
		set = make(map[chan Event]struct{})
		h.subs[shopkeeperID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[shopkeeperID]; ok {
			if _, present := set[ch]; present {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, shopkeeperID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every live subscriber of the shopkeeper.
func (h *Hub) Publish(shopkeeperID, event string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[shopkeeperID] {
		select {
		case ch <- Event{Name: event, Payload: payload}:
		default:
		}
	}
}
