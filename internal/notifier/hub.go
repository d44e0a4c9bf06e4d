package notifier

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/somix-network/somix-ledger/internal/logger"
)

const writeWait = 5 * time.Second

// Hub tracks live WebSocket sessions keyed by canonical address. One session
// per address; a new connection for the same address replaces the old one.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes to the connection
}

// NewHub creates an empty session registry
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*session),
	}
}

// Register associates a connection with an address. Any previous connection
// for the address is closed; newest wins.
func (h *Hub) Register(address string, conn *websocket.Conn) {
	h.mu.Lock()
	prev := h.sessions[address]
	h.sessions[address] = &session{conn: conn}
	h.mu.Unlock()

	if prev != nil {
		_ = prev.conn.Close()
	}
}

// Unregister removes the connection for an address, but only if it is still
// the registered one. A replaced connection unregistering late must not evict
// its successor.
func (h *Hub) Unregister(address string, conn *websocket.Conn) {
	h.mu.Lock()
	if s, ok := h.sessions[address]; ok && s.conn == conn {
		delete(h.sessions, address)
	}
	h.mu.Unlock()
}

// Connected reports whether an address has a live session
func (h *Hub) Connected(address string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.sessions[address]
	return ok
}

// Deliver pushes a payload to the address's session if one exists. Delivery
// is best effort: no session or a write failure is not an error, the durable
// notification record is the source of truth.
func (h *Hub) Deliver(address string, payload interface{}) {
	h.mu.RLock()
	s, ok := h.sessions[address]
	h.mu.RUnlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(payload); err != nil {
		logger.Debug("failed to push over websocket",
			zap.String("address", address),
			zap.Error(err))
		_ = s.conn.Close()
		h.Unregister(address, s.conn)
	}
}

// Close shuts down every live session
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for address, s := range h.sessions {
		_ = s.conn.Close()
		delete(h.sessions, address)
	}
}
