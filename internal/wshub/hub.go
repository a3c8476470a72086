package wshub

import (
	"context"
	"sync"

	"github.com/coder/websocket"
)

// Client wraps one WebSocket connection with a buffered outbound queue. The
// queue decouples room fan-out from the socket: senders never block on a
// slow peer.
type Client struct {
	ID   string
	Conn *websocket.Conn
	send chan []byte
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		send: make(chan []byte, 32),
	}
}

// TrySend enqueues a message for delivery. Non-blocking: drops the message
// and reports false if the client's queue is full.
func (c *Client) TrySend(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		// Drop message if channel full
		return false
	}
}

// WritePump reads from the send queue and writes to the WebSocket
// connection until the context is canceled or a write fails.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.send:
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks every live connection for metrics and shutdown.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll closes every tracked connection; used for graceful shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		c.Conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(h.clients, id)
	}
}
