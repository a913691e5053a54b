package store

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager maps session tokens to their Store. Sessions are created on
// demand and live for the lifetime of the process; carts are volatile by
// design.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Store
}

// NewSessionManager constructs an empty SessionManager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Store),
	}
}

// Ensure returns the store for the token, creating a new session when the
// token is empty or unknown. Unknown tokens are never adopted as session
// keys: the server always mints its own, so a client cannot fix a session
// id for someone else. The returned token identifies the session the store
// belongs to.
func (m *SessionManager) Ensure(token string) (string, *Store) {
	if token != "" {
		m.mu.RLock()
		s, ok := m.sessions[token]
		m.mu.RUnlock()
		if ok {
			return token, s
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	token = uuid.NewString()
	s := New()
	m.sessions[token] = s
	return token, s
}

// Get returns the store for the token without creating one
func (m *SessionManager) Get(token string) (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

// Len returns the number of live sessions
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
