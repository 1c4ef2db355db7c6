package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/services/notifier"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // same-site frontend plus local development
	},
}

// EventsHandler upgrades clients onto the change-notification stream.
type EventsHandler struct {
	hub    *notifier.Hub
	logger *zap.Logger
}

func NewEventsHandler(hub *notifier.Hub, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, logger: logger}
}

// StreamHandler holds the connection open and pushes a topic frame whenever a
// collection changes. Clients reload the affected collections on receipt.
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	// Drain client frames until the connection closes; clients only listen.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
