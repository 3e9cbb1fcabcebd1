// Package websocket pushes generation progress events to the blog editor.
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Event types pushed to editor clients
const (
	TypeConnected           = "connected"
	TypeGenerationStarted   = "generation_started"
	TypeGenerationCompleted = "generation_completed"
	TypeGenerationFailed    = "generation_failed"
)

// Client represents a connected WebSocket client
type Client struct {
	conn   *websocket.Conn
	postID uuid.UUID
	send   chan []byte
}

// Message represents a WebSocket message
type Message struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients by post ID
	clients map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Guard clients map
	mu sync.RWMutex
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's message handling loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.postID]; !ok {
				h.clients[client.postID] = make(map[*Client]bool)
			}
			h.clients[client.postID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.postID]; ok {
				delete(h.clients[client.postID], client)
				close(client.send)

				if len(h.clients[client.postID]) == 0 {
					delete(h.clients, client.postID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register registers a new client connection
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client connection
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastToPost sends a message to all clients watching a post
func (h *Hub) BroadcastToPost(postID uuid.UUID, message Message) {
	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshalling WebSocket message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.clients[postID]
	if !ok {
		return
	}

	for client := range clients {
		select {
		case client.send <- messageJSON:
		default:
			// Client's send buffer is full, unregister
			go h.Unregister(client)
		}
	}
}

// HandleConnection handles an incoming WebSocket connection
func (h *Hub) HandleConnection(conn *websocket.Conn, postID uuid.UUID) {
	client := &Client{
		conn:   conn,
		postID: postID,
		send:   make(chan []byte, 256),
	}

	h.Register(client)

	initialMsg := Message{
		Type:      TypeConnected,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"post_id": postID.String(),
			"status":  "connected",
		},
	}
	msgJSON, _ := json.Marshal(initialMsg)
	client.send <- msgJSON

	go client.writePump()
	go client.readPump(h)
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		// Incoming messages are not processed; the channel is push-only
	}
}
