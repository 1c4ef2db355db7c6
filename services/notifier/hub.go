// Package notifier pushes change-notification topics to connected websocket
// clients, playing the cross-mount broadcast role for frontends: a client
// receiving a topic frame reloads the affected collections over the API.
package notifier

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/services/events"
)

// TopicMessage is the frame sent to clients. It carries no collection data:
// clients always reload from the API rather than trusting an event payload.
type TopicMessage struct {
	Topic string `json:"topic"`
}

// Hub tracks connected clients and relays bus topics to all of them.
type Hub struct {
	logger *zap.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	subs    []*events.Subscription
}

// NewHub subscribes to both collection topics for the lifetime of the hub.
func NewHub(bus *events.Bus, logger *zap.Logger) *Hub {
	h := &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
	for _, topic := range []events.Topic{events.TopicWishlistUpdated, events.TopicBookingsUpdated} {
		topic := topic
		h.subs = append(h.subs, bus.Subscribe(topic, func() {
			h.broadcast(topic)
		}))
	}
	return h
}

// Register adds a client connection until it closes.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	h.logger.Debug("notifier: client connected")
}

// Unregister drops and closes a client connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
	h.logger.Debug("notifier: client disconnected")
}

func (h *Hub) broadcast(topic events.Topic) {
	msg, err := json.Marshal(TopicMessage{Topic: string(topic)})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("notifier: dropping client", zap.Error(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Close releases the bus subscriptions and disconnects every client.
func (h *Hub) Close() {
	for _, sub := range h.subs {
		sub.Unsubscribe()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}
