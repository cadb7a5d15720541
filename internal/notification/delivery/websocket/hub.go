package websocket

import (
	"context"
	"sync"

	"pharmaclear-api/pkg/log"
)

// Hub maintains the set of active clients and routes notification pushes
// to the connections of the targeted user.
type Hub struct {
	clients map[*Client]bool

	// user_id -> set of connections, for targeted pushes
	users map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
	l  log.Logger
}

func NewHub(l log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		users:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		l:          l,
	}
}

// Run processes register and unregister requests until the context ends.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if _, ok := h.users[client.userID]; !ok {
				h.users[client.userID] = make(map[*Client]bool)
			}
			h.users[client.userID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				if userConns, ok := h.users[client.userID]; ok {
					delete(userConns, client)
					if len(userConns) == 0 {
						delete(h.users, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			return
		}
	}
}

// SendToUser pushes a message to every active connection of one user. A
// client with a full send buffer is skipped; its write pump will clean it
// up when the connection is actually dead.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.users[userID] {
		select {
		case client.send <- message:
		default:
		}
	}
}

// Stats returns the number of connections and distinct connected users.
func (h *Hub) Stats() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients), len(h.users)
}
