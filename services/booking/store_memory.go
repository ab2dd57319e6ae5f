package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"goroute/models"
)

type memoryEntry struct {
	session   *models.Session
	expiresAt time.Time // zero means no expiry
}

// MemorySessionStore keeps sessions in process. Sessions are copied on the
// way in and out so callers never share state with the store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates a store whose sessions expire ttl after their
// last save. A non-positive ttl disables expiry.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Get(_ context.Context, userID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[userID]
	if !ok || s.expired(entry, s.now()) {
		return nil, ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.Session) error {
	if session == nil || session.UserID == "" {
		return errors.New("session without user id")
	}
	entry := memoryEntry{session: session.Clone()}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = entry
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

// Sweep drops sessions that expired before now and reports how many went.
func (s *MemorySessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, entry := range s.sessions {
		if s.expired(entry, now) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}

// Len counts stored sessions, expired or not.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && now.After(entry.expiresAt)
}
