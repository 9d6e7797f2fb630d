package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"tandem/internal/observability"
)

// Hub maps userID -> connected clients. It listens for Redis pub/sub messages
// (via Notifier) and fans them out to each client's send queue; the clients'
// write pumps own the actual connection writes.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*Client]struct{})}
}

// Name identifies the hub in logs.
func (h *Hub) Name() string { return "notifications" }

// Register adds a client to its user's connection set.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.clients[c.userID]
	if !ok {
		m = make(map[*Client]struct{})
		h.clients[c.userID] = m
	}
	if _, present := m[c]; !present {
		m[c] = struct{}{}
		observability.WebSocketConnections.Inc()
	}
}

// Unregister removes a client.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m, ok := h.clients[c.userID]; ok {
		if _, present := m[c]; present {
			delete(m, c)
			observability.WebSocketConnections.Dec()
		}
		if len(m) == 0 {
			delete(h.clients, c.userID)
		}
	}
}

// ConnectionCount returns the number of active connections for the user.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Broadcast queues message for all of userID's clients. It never writes to a
// connection itself, so it is safe to call from any goroutine.
func (h *Hub) Broadcast(userID uint, message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		c.TrySend([]byte(message))
	}
}

// StartWiring connects the Notifier to this hub: it subscribes to the Redis
// pattern and forwards messages to matching userID connections.
func (h *Hub) StartWiring(ctx context.Context, n *Notifier) error {
	return n.StartPatternSubscriber(ctx, func(channel, payload string) {
		// channel form: notifications:user:<id>
		var userID uint
		if _, err := fmt.Sscanf(channel, "notifications:user:%d", &userID); err != nil {
			log.Printf("invalid notification channel: %s", channel)
			return
		}
		h.Broadcast(userID, payload)
	})
}

// Shutdown closes every client's send queue; the write pumps send a close
// frame and tear down their connections.
func (h *Hub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, clients := range h.clients {
		for c := range clients {
			close(c.send)
			observability.WebSocketConnections.Dec()
		}
		delete(h.clients, userID)
	}
	return nil
}
