package session

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
)

// New creates a session for token that expires after ttl. A non-positive
// ttl falls back to domain.DefaultSessionTTL.
func New(token string, ttl time.Duration) *domain.Session {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	now := time.Now().UTC()
	return &domain.Session{
		ID:        uuid.New(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
