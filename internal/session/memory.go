// Package session keeps the API bearer token of each browser session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CleanupInterval is how often expired sessions are swept
const CleanupInterval = 5 * time.Minute

// MemoryStore is an in-process AuthStore. Sessions are lost on restart.
// It is safe for concurrent use
type MemoryStore struct {
	sessions map[uuid.UUID]*domain.Session
	mu       sync.RWMutex
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// Ensure MemoryStore implements domain.AuthStore
var _ domain.AuthStore = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore and starts its cleanup goroutine
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[uuid.UUID]*domain.Session),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// Get returns the session, or domain.ErrSessionNotFound when it is unknown or expired
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	cp := *sess
	return &cp, nil
}

// Set stores or replaces a session
func (s *MemoryStore) Set(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == uuid.Nil {
		return domain.ErrInvalidInput
	}
	cp := *session

	s.mu.Lock()
	s.sessions[session.ID] = &cp
	s.mu.Unlock()
	return nil
}

// Clear removes a session. Clearing an unknown session is not an error.
func (s *MemoryStore) Clear(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// sweep drops expired sessions and returns how many were removed
func (s *MemoryStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				log.Debug().Int("count", n).Msg("Cleaned up expired sessions")
			}
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}
