package transport

import (
	"sync"

	"framerelay/internal/logging"
	"framerelay/internal/telemetry"
	"framerelay/internal/wire"
)

// hubBuffer is the per-subscriber channel depth. Transform updates arrive at
// frame-ish rates; a subscriber that falls this far behind loses updates
// rather than stalling the read loop.
const hubBuffer = 64

// Hub fans one stream of transform updates out to any number of gRPC
// subscribers. Broadcast never blocks: a full subscriber buffer drops the
// update and counts it.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan wire.Matrix
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan wire.Matrix)}
}

func (h *Hub) Subscribe() (int, <-chan wire.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan wire.Matrix, hubBuffer)
	h.subs[id] = ch
	return id, ch
}

func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers one update to every subscriber. Safe to call from the
// pipe read goroutine.
func (h *Hub) Broadcast(m wire.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		select {
		case ch <- m:
		default:
			telemetry.DroppedUpdates.Inc()
			logging.L().Warn("transform update dropped, subscriber too slow", "subscriber", id)
		}
	}
}
