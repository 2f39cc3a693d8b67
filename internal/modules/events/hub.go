package events

import (
	"sync"
	"time"
)

const (
	SubmissionApproved = "submission.approved"
	SubmissionRejected = "submission.rejected"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}

// Hub fans events out to registered subscribers. Each subscriber has its own
// buffered channel, so publish order is preserved per subscriber; a subscriber
// that stops draining loses events rather than blocking the publisher.
type Hub struct {
	mutex  sync.RWMutex
	nextID int64
	subs   map[int64]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int64]chan Event)}
}

func (h *Hub) Subscribe() (int64, <-chan Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	ch := make(chan Event, 32)
	h.subs[h.nextID] = ch
	return h.nextID, ch
}

func (h *Hub) Unsubscribe(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if ch, exists := h.subs[id]; exists {
		close(ch)
		delete(h.subs, id)
	}
}

func (h *Hub) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- evt:
		default:
			// subscriber buffer full, drop for this one
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subs)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
