package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgNextQuestion       MessageType = "next_question"
	MsgAssessmentComplete MessageType = "assessment_complete"
	MsgBlueprintUpdated   MessageType = "blueprint_updated"
	MsgError              MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the per-user WebSocket connections the mobile app keeps
// open during an assessment. One connection per user; a reconnect
// replaces the previous one.
type Hub struct {
	userConns map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *UserMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

// UserMessage is a message addressed to one user
type UserMessage struct {
	UserID  string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		userConns:  make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *UserMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if old, ok := h.userConns[conn.UserID]; ok {
				close(old.Send)
			}
			h.userConns[conn.UserID] = conn
			h.mu.Unlock()
			log.Printf("User %s connected via WebSocket", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.userConns[conn.UserID]; ok && existing == conn {
				delete(h.userConns, conn.UserID)
				close(conn.Send)
				log.Printf("User %s disconnected", conn.UserID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			if conn, ok := h.userConns[msg.UserID]; ok {
				data, _ := json.Marshal(msg.Message)
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToUser sends a message to one user (implements
// service.Broadcaster)
func (h *Hub) BroadcastToUser(userID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &UserMessage{
		UserID: userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectUser drops the user's connection if any (implements
// service.Broadcaster)
func (h *Hub) DisconnectUser(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.userConns[userID]; ok {
		delete(h.userConns, userID)
		close(conn.Send)
	}
}
