package websocket

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"llm-chat/internal/models"
	"llm-chat/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Backend is a responder reachable over the socket plus the error string
// sent when it fails.
type Backend struct {
	Responder  services.Responder
	FailureMsg string
}

// Hub answers chat frames on websocket connections. Every inbound frame gets
// exactly one outbound frame; connections share nothing but the backends.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]*websocket.Conn
	backends    map[string]Backend
}

func NewHub(backends map[string]Backend) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*websocket.Conn),
		backends:    backends,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	connID := uuid.New()
	h.registerConnection(connID, conn)
	defer h.unregisterConnection(connID, conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("WebSocket read error: conn %s: %v", connID, err)
			}
			return
		}

		resp := h.answer(r.Context(), connID, data)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("WebSocket write error: conn %s: %v", connID, err)
			return
		}
	}
}

// answer applies the HTTP routes' rules to one frame.
func (h *Hub) answer(ctx context.Context, connID uuid.UUID, data []byte) models.WSResponse {
	req, err := models.DecodeWSRequest(data)
	if errors.Is(err, models.ErrMalformedBody) {
		return models.WSResponse{Error: models.MsgInvalidFrame}
	}

	backend, ok := h.backends[req.Backend]
	if !ok {
		return models.WSResponse{Error: models.MsgUnknownBackend}
	}
	if err != nil {
		return models.WSResponse{Error: models.MsgMessageRequired}
	}

	text, err := backend.Responder.Reply(ctx, req.Message)
	if err != nil {
		log.Printf("WebSocket conn %s: error calling %s backend: %v", connID, req.Backend, err)
		return models.WSResponse{Error: backend.FailureMsg}
	}
	return models.WSResponse{Text: text}
}

func (h *Hub) registerConnection(connID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[connID] = conn
	log.Printf("WebSocket connected: conn %s (total: %d)", connID, len(h.connections))
}

func (h *Hub) unregisterConnection(connID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()
	delete(h.connections, connID)
	log.Printf("WebSocket disconnected: conn %s", connID)
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// CloseAll sends a going-away close frame to every open connection. Used on
// shutdown, since http.Server.Shutdown does not track hijacked connections.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, conn := range h.connections {
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		conn.Close()
	}
}
