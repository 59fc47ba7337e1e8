// Package websocket carries the live assistant chat. Each connected
// client holds one conversation with the assistant; replies go only to
// the client that asked.
package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

// ClientMessage is one inbound chat turn.
type ClientMessage struct {
	Message string `json:"message"`
}

// Hub tracks the connected chat clients.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	chatService service.ChatService

	mu sync.RWMutex
}

func NewHub(chatService service.ChatService) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client, 256),
		unregister:  make(chan *Client, 256),
		chatService: chatService,
	}
}

// Run owns the client set. Must run in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()

			logger.Info("Chat client connected", map[string]interface{}{
				"session_id": client.SessionID,
				"clients":    count,
			})

			// Open every conversation with the greeting
			client.sendMessage(h.chatService.Greeting())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()

			logger.Info("Chat client disconnected", map[string]interface{}{
				"session_id": client.SessionID,
				"clients":    count,
			})
		}
	}
}

// Register queues a client for registration.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client for removal.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleClientMessage parses one inbound frame and answers it. The
// assistant reply is generated off the read pump so a slow reply never
// stalls the connection.
func (h *Hub) HandleClientMessage(client *Client, raw []byte) {
	client.RateMu.Lock()
	now := time.Now()
	if now.Sub(client.LastResetTime) >= time.Second {
		client.MessageCount = 0
		client.LastResetTime = now
	}
	client.MessageCount++
	count := client.MessageCount
	client.RateMu.Unlock()

	if count > maxMessagesPerSecond {
		logger.Warn("Chat rate limit exceeded", map[string]interface{}{
			"session_id": client.SessionID,
			"count":      count,
		})
		return
	}

	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Warn("Failed to parse chat frame", map[string]interface{}{
			"session_id": client.SessionID,
			"error":      err.Error(),
		})
		return
	}

	go func() {
		reply, err := h.chatService.Respond(msg.Message)
		if err != nil {
			logger.Debug("Dropping unanswerable chat message", map[string]interface{}{
				"session_id": client.SessionID,
				"error":      err.Error(),
			})
			return
		}
		client.sendMessage(*reply)
	}()
}

func (c *Client) sendMessage(message model.ChatMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Error("Failed to marshal chat message", err, map[string]interface{}{
			"session_id": c.SessionID,
		})
		return
	}

	select {
	case c.Send <- data:
	default:
		logger.Warn("Chat client send buffer full, disconnecting", map[string]interface{}{
			"session_id": c.SessionID,
		})
		go c.Hub.Unregister(c)
	}
}
