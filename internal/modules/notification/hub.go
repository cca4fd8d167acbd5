package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// session wraps a live socket with a write lock, since gorilla connections
// do not allow concurrent writers.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *session) write(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Hub tracks at most one live connection per member for pushing
// notifications as they are created. Members without an open socket simply
// poll the feed.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*session)}
}

// Register adopts conn as the member's push channel, replacing and closing
// any previous one.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	prev := h.sessions[userID]
	h.sessions[userID] = &session{conn: conn}
	h.mu.Unlock()

	if prev != nil {
		_ = prev.conn.Close()
	}
}

func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	s := h.sessions[userID]
	delete(h.sessions, userID)
	h.mu.Unlock()

	if s != nil {
		_ = s.conn.Close()
	}
}

// SendToUser pushes a payload to the member's socket if one is open. A
// failed write tears the session down; the notification is already
// persisted, so nothing is lost.
func (h *Hub) SendToUser(userID string, message interface{}) bool {
	h.mu.RLock()
	s := h.sessions[userID]
	h.mu.RUnlock()

	if s == nil {
		return false
	}
	if err := s.write(message); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.sessions[userID]
	return ok
}

// Close tears down every open session, used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*session)
	h.mu.Unlock()

	for _, s := range sessions {
		_ = s.conn.Close()
	}
}
