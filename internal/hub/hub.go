package hub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Priyank-2005/opencric/internal/client"
	"github.com/Priyank-2005/opencric/pkg/models"
)

// Hub maintains the set of live viewers and fans score events out to
// the ones watching the affected match.
type Hub struct {
	// Registered clients
	clients   map[*client.Client]bool
	clientsMu sync.RWMutex

	// Inbound events from the score consumer
	broadcast chan models.ScoreEvent

	// Register requests from clients
	register chan *client.Client

	// Unregister requests from clients
	unregister chan *client.Client

	// Metrics
	totalConnections int64
	totalEvents      int64
	metricsMu        sync.Mutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client.Client]bool),
		broadcast:  make(chan models.ScoreEvent, 1000),
		register:   make(chan *client.Client),
		unregister: make(chan *client.Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) {
	fmt.Println("✓ Hub started")

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *client.Client) {
	h.register <- c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *client.Client) {
	h.unregister <- c
}

// Broadcast hands a score event to the hub without blocking. Events
// are at-most-once; when the buffer is full the event is dropped and
// viewers recover by re-fetching the match.
func (h *Hub) Broadcast(event models.ScoreEvent) {
	select {
	case h.broadcast <- event:
	default:
		fmt.Println("⚠️  Broadcast buffer full, dropping event")
	}
}

// registerClient adds a client to the active clients map
func (h *Hub) registerClient(c *client.Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true

	h.metricsMu.Lock()
	h.totalConnections++
	h.metricsMu.Unlock()

	fmt.Printf("client %s connected (total: %d)\n", c.ID, len(h.clients))
}

// unregisterClient removes a client from the active clients map
func (h *Hub) unregisterClient(c *client.Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		fmt.Printf("client %s disconnected (total: %d)\n", c.ID, len(h.clients))
	}
}

// broadcastEvent sends an event to every client watching its match
func (h *Hub) broadcastEvent(event models.ScoreEvent) {
	h.clientsMu.RLock()
	clients := make([]*client.Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	message := models.ServerMessage{
		Type:      models.MessageTypeScoreUpdate,
		Payload:   event,
		Timestamp: time.Now(),
	}

	for _, c := range clients {
		if !c.WatchesMatch(event.MatchID) {
			continue
		}

		if !c.TrySend(message) {
			// Client buffer full - they're too slow, disconnect them
			fmt.Printf("⚠️  client %s buffer full, disconnecting\n", c.ID)
			go h.Unregister(c)
		}
	}

	h.metricsMu.Lock()
	h.totalEvents++
	h.metricsMu.Unlock()
}

// GetMetrics returns hub metrics
func (h *Hub) GetMetrics() map[string]interface{} {
	h.clientsMu.RLock()
	activeClients := len(h.clients)
	h.clientsMu.RUnlock()

	h.metricsMu.Lock()
	totalConnections := h.totalConnections
	totalEvents := h.totalEvents
	h.metricsMu.Unlock()

	return map[string]interface{}{
		"active_clients":     activeClients,
		"total_connections":  totalConnections,
		"total_events":       totalEvents,
		"broadcast_capacity": cap(h.broadcast),
		"broadcast_usage":    len(h.broadcast),
	}
}

// GetClientCount returns the number of active clients
func (h *Hub) GetClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// shutdown closes all client connections
func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	fmt.Printf("🛑 Shutting down hub (%d active clients)\n", len(h.clients))

	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
