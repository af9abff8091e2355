package ws

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

// Hub tracks connected observers and pushes feed events to all of them.
// Delivery is best-effort: no persistence, no replay for late joiners.
type Hub struct {
	// clients maps userID → client; one live connection per user.
	clients map[uuid.UUID]*Client

	// Shutdown is signalled by closing a client's done channel; send is
	// never closed, so the client goroutines can keep queueing safely
	// while the drop races their last writes.
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger.With("module", "ws"),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.userID] = client
			h.logger.Info("client connected", "user_id", client.userID, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.done)
				h.logger.Info("client disconnected", "user_id", client.userID, "total", len(h.clients))
			}

		case data := <-h.broadcast:
			for _, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full - disconnect
					delete(h.clients, client.userID)
					close(client.done)
				}
			}
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal event", "error", err)
		return
	}
	h.broadcast <- data
}
