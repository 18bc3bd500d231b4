package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
)

// FileStore keeps a single session in a JSON file with 0600 permissions.
// It backs the command line client, which has one signed-in user at a time.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// Ensure FileStore implements domain.AuthStore
var _ domain.AuthStore = (*FileStore)(nil)

type fileState struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileStore creates a FileStore at path, creating its directory
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// DefaultFilePath returns $XDG_DATA_HOME/fortuna/session.json, falling back to ~/.local/share
func DefaultFilePath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "fortuna", "session.json"), nil
}

// Current returns the stored session regardless of its id
func (s *FileStore) Current(ctx context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	sess := state.toDomain()
	if sess.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Get returns the stored session when its id matches
func (s *FileStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess.ID != id {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Set replaces the stored session
func (s *FileStore) Set(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == uuid.Nil {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(fileState{
		ID:        session.ID,
		Token:     session.Token,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the stored session when its id matches
func (s *FileStore) Clear(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if state.ID != id {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *FileStore) load() (*fileState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if state.Token == "" {
		return nil, domain.ErrSessionNotFound
	}
	return &state, nil
}

func (f *fileState) toDomain() *domain.Session {
	return &domain.Session{
		ID:        f.ID,
		Token:     f.Token,
		CreatedAt: f.CreatedAt,
		ExpiresAt: f.ExpiresAt,
	}
}
