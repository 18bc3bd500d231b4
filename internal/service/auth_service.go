package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/session"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuthService handles sign-in and the sessions that hold API tokens
type AuthService struct {
	eventSource
	authRepo   domain.AuthRepository
	store      domain.AuthStore
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(authRepo domain.AuthRepository, store domain.AuthStore, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		authRepo:   authRepo,
		store:      store,
		sessionTTL: sessionTTL,
	}
}

// LoginResult is a freshly created session and the signed-in user
type LoginResult struct {
	Session *domain.Session
	User    *domain.User
}

// Login exchanges credentials for an API token and stores it in a new session
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := domain.Validate(creds); err != nil {
		return nil, err
	}

	token, user, err := s.authRepo.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	sess := session.New(token, s.sessionTTL)
	if err := s.store.Set(ctx, sess); err != nil {
		log.Error().Err(err).Msg("Failed to store session")
		return nil, err
	}

	log.Info().Str("session_id", sess.ID.String()).Msg("User signed in")
	return &LoginResult{Session: sess, User: user}, nil
}

// Logout revokes the token on the API and clears the session. The session
// is cleared even when the API call fails.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.authRepo.Logout(ctx, sess.Token); err != nil && !domainErrIsAuth(err) {
		log.Warn().Err(err).Str("session_id", sessionID.String()).Msg("API logout failed")
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.publishEvent(sess.Token, websocket.SessionEnded())
	log.Info().Str("session_id", sessionID.String()).Msg("User signed out")
	return nil
}

// Resolve returns the session for sessionID
func (s *AuthService) Resolve(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	return s.store.Get(ctx, sessionID)
}

// Invalidate clears a session whose token the API rejected
func (s *AuthService) Invalidate(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	log.Info().Str("session_id", sessionID.String()).Msg("Session invalidated after API rejection")
	return nil
}

// CurrentUser returns the profile behind token
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.authRepo.Me(ctx, token)
}

func domainErrIsAuth(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
