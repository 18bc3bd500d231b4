package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB records statements and answers QueryRow from a canned row
type fakeDB struct {
	execSQL  []string
	execArgs [][]any
	execTag  pgconn.CommandTag
	execErr  error
	row      pgx.Row
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return f.execTag, f.execErr
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.row
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *pgtype.UUID:
			*v = r.values[i].(pgtype.UUID)
		case *string:
			*v = r.values[i].(string)
		case *pgtype.Timestamptz:
			*v = r.values[i].(pgtype.Timestamptz)
		}
	}
	return nil
}

func TestSessionRepository_Get(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{
		pgtype.UUID{Bytes: id, Valid: true},
		"tok",
		pgtype.Timestamptz{Time: created, Valid: true},
		pgtype.Timestamptz{Time: created.Add(time.Hour), Valid: true},
	}}}

	sess, err := NewSessionRepository(db).Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, sess.ID)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, created.Add(time.Hour), sess.ExpiresAt)
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := NewSessionRepository(db).Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Get_DatabaseError(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("connection reset")}}

	_, err := NewSessionRepository(db).Get(context.Background(), uuid.New())

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestSessionRepository_Set(t *testing.T) {
	db := &fakeDB{}
	sess := &domain.Session{ID: uuid.New(), Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, NewSessionRepository(db).Set(context.Background(), sess))

	require.Len(t, db.execSQL, 1)
	assert.Contains(t, db.execSQL[0], "ON CONFLICT (id)")
	assert.Equal(t, "tok", db.execArgs[0][1])
	created := db.execArgs[0][2].(pgtype.Timestamptz)
	assert.False(t, created.Time.IsZero())
}

func TestSessionRepository_Set_RejectsNilID(t *testing.T) {
	err := NewSessionRepository(&fakeDB{}).Set(context.Background(), &domain.Session{Token: "tok"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionRepository_Clear(t *testing.T) {
	db := &fakeDB{}
	id := uuid.New()

	require.NoError(t, NewSessionRepository(db).Clear(context.Background(), id))

	require.Len(t, db.execSQL, 1)
	assert.True(t, strings.HasPrefix(db.execSQL[0], "DELETE FROM sessions"))
	assert.Equal(t, pgtype.UUID{Bytes: id, Valid: true}, db.execArgs[0][0])
}

func TestSessionRepository_EnsureSchema(t *testing.T) {
	db := &fakeDB{}

	require.NoError(t, NewSessionRepository(db).EnsureSchema(context.Background()))
	assert.Contains(t, db.execSQL[0], "CREATE TABLE IF NOT EXISTS sessions")

	db.execErr = errors.New("permission denied")
	assert.Error(t, NewSessionRepository(db).EnsureSchema(context.Background()))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("DELETE 3")}

	n, err := NewSessionRepository(db).DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
