package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WebSocket message types for the viewer protocol
const (
	// Client -> Server messages
	MsgTypePing = "ping"

	// Server -> Client messages
	MsgTypeConnected = "connected"
	MsgTypePong      = "pong"
	MsgTypeRefresh   = "feed:refresh"
)

// WSMessage is the envelope for all websocket traffic
type WSMessage struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// RefreshPayload announces a new feed snapshot to connected viewers
type RefreshPayload struct {
	SnapshotID  string `json:"snapshotId"`
	Allocations int    `json:"allocations"`
}

// Hub tracks connected viewer clients and broadcasts refresh events
type Hub struct {
	upgrader websocket.Upgrader
	clients  map[string]*websocket.Conn
	mu       sync.RWMutex
	log      *zap.Logger
}

// NewHub creates a websocket hub
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The viewer may be served from a dev server on another port
				return true
			},
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
		},
		clients: make(map[string]*websocket.Conn),
		log:     log,
	}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client disconnects. Clients only ever send pings; all other traffic is
// server-initiated broadcasts.
func (hub *Hub) HandleWebSocket(c echo.Context) error {
	ws, err := hub.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	clientID := uuid.New().String()
	hub.mu.Lock()
	hub.clients[clientID] = ws
	hub.mu.Unlock()

	defer func() {
		hub.mu.Lock()
		delete(hub.clients, clientID)
		hub.mu.Unlock()
		hub.log.Debug("viewer disconnected", zap.String("clientId", clientID))
	}()

	hub.log.Debug("viewer connected", zap.String("clientId", clientID))

	hub.send(ws, WSMessage{
		Type:      MsgTypeConnected,
		Timestamp: time.Now().UnixMilli(),
	})

	for {
		var msg WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				hub.log.Debug("websocket read error",
					zap.String("clientId", clientID),
					zap.Error(err))
			}
			break
		}

		switch msg.Type {
		case MsgTypePing:
			hub.send(ws, WSMessage{Type: MsgTypePong, Timestamp: time.Now().UnixMilli()})
		}
	}

	return nil
}

// BroadcastRefresh notifies every connected viewer of a new feed snapshot
func (hub *Hub) BroadcastRefresh(snapshotID string, allocations int) {
	msg := WSMessage{
		Type:      MsgTypeRefresh,
		Timestamp: time.Now().UnixMilli(),
		Payload: RefreshPayload{
			SnapshotID:  snapshotID,
			Allocations: allocations,
		},
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	for clientID, ws := range hub.clients {
		if err := ws.WriteJSON(msg); err != nil {
			hub.log.Debug("broadcast failed",
				zap.String("clientId", clientID),
				zap.Error(err))
		}
	}
}

// ClientCount returns the number of connected viewers
func (hub *Hub) ClientCount() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients)
}

func (hub *Hub) send(ws *websocket.Conn, msg WSMessage) {
	if err := ws.WriteJSON(msg); err != nil {
		hub.log.Debug("websocket send failed", zap.Error(err))
	}
}
