package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/notifier"
)

const (
	authWait   = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
	writeWait  = 5 * time.Second
)

// upgrader accepts any origin; CORS for the REST surface is handled
// separately and the socket carries no credentials
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// authMessage is the first frame a client must send after connecting
type authMessage struct {
	Type    string `json:"type"`
	Address string `json:"address"`
}

// Handler serves the real-time notification socket
type Handler struct {
	hub *notifier.Hub
}

// NewHandler creates a WebSocket handler backed by the session hub
func NewHandler(hub *notifier.Hub) *Handler {
	return &Handler{hub: hub}
}

// Serve upgrades the connection and registers it with the hub once the client
// identifies itself. The connection is read until it closes; pushed
// notifications are the only server-to-client traffic besides pings.
// GET /ws
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	address, ok := h.authenticate(conn)
	if !ok {
		_ = conn.Close()
		return
	}

	h.hub.Register(address, conn)
	defer func() {
		h.hub.Unregister(address, conn)
		_ = conn.Close()
	}()

	done := make(chan struct{})
	go h.ping(conn, done)
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Drain client frames until the connection drops
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// authenticate waits for the auth frame and returns the canonical address
func (h *Handler) authenticate(conn *websocket.Conn) (string, bool) {
	_ = conn.SetReadDeadline(time.Now().Add(authWait))

	var msg authMessage
	if err := conn.ReadJSON(&msg); err != nil {
		return "", false
	}
	if msg.Type != "auth" || !domain.ValidAddress(msg.Address) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "invalid auth"),
			time.Now().Add(writeWait))
		return "", false
	}

	return domain.NormalizeAddress(msg.Address), true
}

func (h *Handler) ping(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
