/*
Package api
File: hub.go
Description:
    The WebSocket Hub pushes live trip updates to every connected display.

    It maintains a registry of all active clients and manages the broadcast
    channel. When the engine notifies the HubObserver, the resulting message
    is written to the sockets of every connected display.

    Architecture:
    - Hub: The single manager, one goroutine running Run.
    - Client: Represents one display connection.
    - ServeWs: The HTTP handler that upgrades a standard GET request to a WebSocket.
*/

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Message defines the standard JSON envelope for all real-time communication.
// Every message sent over the socket will follow this structure.
type Message struct {
	Type    string `json:"type"`    // Event Type (e.g., "refresh", "body_added")
	Payload any    `json:"payload"` // The actual data (Struct, Map, or String)
	Sender  string `json:"sender"`  // ID of the origin (the trip id)
}

// Client represents a single connected display.
// It acts as a middleman between the websocket connection and the Hub.
type Client struct {
	hub  *Hub            // Reference to the central Hub
	conn *websocket.Conn // The actual low-level WebSocket connection
	send chan []byte     // Buffered channel for outbound messages
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Registered clients map.
	clients map[*Client]bool

	// Outbound messages for every client.
	Broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Closed when Run returns.
	done chan struct{}

	logger *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger.With("component", "hub"),
	}
}

// Run is the main event loop for the Hub. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	defer func() {
		close(h.done)
		for client := range h.clients {
			close(client.send)
			delete(h.clients, client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("display connected", "clients", len(h.clients))

		case client := <-h.unregister:
			// Clean up resources to prevent leaks.
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("display disconnected", "clients", len(h.clients))
			}

		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// If the client's send buffer is full, assume they hung or disconnected.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues a message without blocking the caller. Messages are
// dropped when the hub is not keeping up; the next refresh supersedes them.
func (h *Hub) Publish(message []byte) {
	select {
	case h.Broadcast <- message:
	default:
		h.logger.Warn("hub backlog full, dropping message")
	}
}

// upgrader configures the WebSocket handshake.
// CheckOrigin returns true to allow connections from any host (the display runs locally).
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs handles the HTTP request that initiates a WebSocket connection.
// It "upgrades" the HTTP connection to a persistent TCP connection.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	// Create the client wrapper
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}

	// Register the client with the Hub loop
	select {
	case client.hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	// Start the read/write pumps in their own goroutines.
	// This ensures one slow client doesn't block the entire server.
	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so close frames are seen.
// Displays are read-only; anything they send is ignored.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket error", "error", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	// Range over the channel. This loop exits when c.send is closed.
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
}
