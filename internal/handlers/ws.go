package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Priyank-2005/opencric/internal/client"
	"github.com/Priyank-2005/opencric/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Restrict in production
		return true
	},
}

// WSHandler upgrades live viewer connections and hands them to the hub
type WSHandler struct {
	hub *hub.Hub
	ctx context.Context
}

// NewWSHandler creates a new websocket handler. ctx bounds the client
// pumps' lifetime, outliving any single request.
func NewWSHandler(h *hub.Hub, ctx context.Context) *WSHandler {
	return &WSHandler{
		hub: h,
		ctx: ctx,
	}
}

// HandleWebSocket upgrades HTTP connections to WebSocket
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("⚠️  WebSocket upgrade error: %v\n", err)
		return
	}

	clientID := uuid.New().String()
	c := client.NewClient(clientID, conn, h.hub)

	h.hub.Register(c)

	// Start client pumps (use handler context, not request context)
	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)

	fmt.Printf("✓ WebSocket connection established: %s\n", clientID)
}

// HandleHubMetrics returns live fan-out metrics
func (h *WSHandler) HandleHubMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.hub.GetMetrics())
}
