package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/jwchung/staffdesk/utils"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks open websocket connections per user so notifications can be
// pushed to the recipient's browser sessions.
type Hub struct {
	mu      sync.Mutex
	clients map[uint][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint][]*websocket.Conn),
	}
}

// Register adds a connection for a user.
func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = append(h.clients[userID], conn)
}

// Unregister removes a connection and closes it.
func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.clients[userID]
	for i, c := range conns {
		if c == conn {
			h.clients[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
	conn.Close()
}

// SendToUser pushes a message to every open connection of the user.
// A user with no open connections is not an error.
func (h *Hub) SendToUser(userID uint, msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	for _, conn := range h.clients[userID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("ws write to user %d failed: %v", userID, err)
		}
	}
	return nil
}

// ConnectionCount reports open connections for a user.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[userID])
}
