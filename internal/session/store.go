// Package session maps opaque client-held session ids to logged-in user ids.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session id between requests.
const CookieName = "session_id"

// Store persists the session-id → user-id mapping across requests. State is
// isolated per client: one session id never observes another's user.
type Store interface {
	// Get returns the user id bound to the session, or ok=false when the
	// session is absent or expired.
	Get(ctx context.Context, sessionID string) (userID uint, ok bool, err error)
	// Set binds the session to a user id, replacing any previous binding.
	Set(ctx context.Context, sessionID string, userID uint) error
	// Clear removes the session binding. Clearing an unknown session is a no-op.
	Clear(ctx context.Context, sessionID string) error
}

// NewID mints a fresh opaque session id.
func NewID() string {
	return uuid.NewString()
}

// MemoryStore is a mutex-guarded in-process Store. It backs tests and
// single-process development runs where Redis is unavailable; sessions do not
// survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

// NewMemoryStore returns an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]uint)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.sessions[sessionID]
	return userID, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = userID
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
