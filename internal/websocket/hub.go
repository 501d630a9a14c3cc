package websocket

import (
	"encoding/json"
	"sync"

	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/pkg/logger"
)

type Hub struct {
	// Registered clients map: user id -> list of clients (multi-device)
	clients map[uint][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uint][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a contract event to ALL connected clients. Clients whose
// Send buffer is full are dropped; only Run may close a Send channel, so the
// dropped clients are collected here and handed to the unregister channel
// after the read lock is released.
func (h *Hub) Broadcast(event dto.ContractEventMessage) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "contract_event",
		"data": event,
	})

	var dead []*Client
	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				dead = append(dead, client)
			}
		}
	}
	h.mu.RUnlock()

	for _, client := range dead {
		h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"user_id": client.UserID})
		h.unregister <- client
	}
}

// Send delivers a contract event to one user's connected devices.
func (h *Hub) Send(userID uint, event dto.ContractEventMessage) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "contract_event",
		"data": event,
	})

	var dead []*Client
	h.mu.RLock()
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			dead = append(dead, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range dead {
		h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"user_id": userID})
		h.unregister <- client
	}
}
