package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of *pgxpool.Pool the repository needs
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createSessionsTable = `
	CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		token TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);
`

// SessionRepository implements domain.AuthStore using PostgreSQL, so
// sessions survive restarts and are shared between replicas
type SessionRepository struct {
	db DBTX
}

// Ensure SessionRepository implements domain.AuthStore
var _ domain.AuthStore = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// EnsureSchema creates the sessions table when it does not exist
func (r *SessionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}

// Get retrieves an unexpired session
func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var (
		sessionID pgtype.UUID
		token     string
		createdAt pgtype.Timestamptz
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, token, created_at, expires_at FROM sessions WHERE id = $1 AND expires_at > NOW()`,
		pgtype.UUID{Bytes: id, Valid: true},
	).Scan(&sessionID, &token, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return &domain.Session{
		ID:        uuid.UUID(sessionID.Bytes),
		Token:     token,
		CreatedAt: createdAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// Set inserts or replaces a session
func (r *SessionRepository) Set(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == uuid.Nil {
		return domain.ErrInvalidInput
	}
	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, token, created_at, expires_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at`,
		pgtype.UUID{Bytes: session.ID, Valid: true},
		session.Token,
		pgtype.Timestamptz{Time: createdAt, Valid: true},
		pgtype.Timestamptz{Time: session.ExpiresAt, Valid: true},
	)
	return err
}

// Clear deletes a session
func (r *SessionRepository) Clear(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, pgtype.UUID{Bytes: id, Valid: true})
	return err
}

// DeleteExpired removes expired sessions and returns how many were removed
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
