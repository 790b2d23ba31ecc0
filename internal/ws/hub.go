package ws

import (
	"log"
	"sync"
)

// Hub fans events out to connected observers. Delivery is best effort and
// at-most-once: a client whose send buffer is full is dropped, and missed
// events are not replayed. Clients reconcile via the list endpoint on
// reconnect.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WebSocket] client %s connected (user=%s role=%s)", client.ID, client.UserID, client.Role)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[WebSocket] client %s disconnected", client.ID)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

// deliver routes a message to its audience. Messages with an audience set
// reach only clients holding that role; everything else goes to everyone.
func (h *Hub) deliver(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if message.Audience != "" && client.Role != message.Audience {
			continue
		}
		select {
		case client.send <- message:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// Broadcast queues a message for fan-out.
func (h *Hub) Broadcast(message Message) {
	h.broadcast <- message
}
