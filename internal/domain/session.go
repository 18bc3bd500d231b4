package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL bounds how long a stored token is served
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session binds a browser session to the opaque API bearer token
type Session struct {
	ID        uuid.UUID
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// AuthStore keeps bearer tokens. Get returns ErrSessionNotFound for
// unknown or expired sessions.
type AuthStore interface {
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Set(ctx context.Context, session *Session) error
	Clear(ctx context.Context, id uuid.UUID) error
}
