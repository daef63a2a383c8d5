package ws

import (
	"Planta-Backend/domain"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Client wraps one websocket connection with an outbound buffer.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected clients and pushes reminder alerts to all of them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client buffer full, drop the connection.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastReminder pushes a due reminder to every connected client.
func (h *Hub) BroadcastReminder(payload domain.ActiveReminderResponse) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal reminder event: %v", err)
		return
	}
	h.broadcast <- data
}

// UpgradeRequired rejects plain HTTP requests on the websocket route.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWS serves one websocket connection until the peer disconnects.
func (h *Hub) HandleWS() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{
			conn: conn,
			send: make(chan []byte, 64),
		}
		h.register <- client

		go client.writePump()

		// Incoming messages are ignored; the loop exists to detect
		// disconnection.
		defer func() {
			h.unregister <- client
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
