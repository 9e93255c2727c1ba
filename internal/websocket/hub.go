package websocket

import (
	"context"
	"encoding/json"
	"log"
)

// Event is the wire format for every pushed message.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans events out to every connected client. Scoring is a batch process,
// so the hub only ever carries low-volume notifications such as
// "package:leaderboard_ready".
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a hub; call Run before serving connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.close()
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			log.Printf("[WSHub] client connected, total=%d", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
				log.Printf("[WSHub] client disconnected, total=%d", len(h.clients))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it rather than block the hub.
					delete(h.clients, client)
					client.close()
				}
			}
		}
	}
}

// BroadcastEvent pushes one event to every connected client.
func (h *Hub) BroadcastEvent(eventType string, data interface{}) error {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		return err
	}
	h.broadcast <- payload
	return nil
}
