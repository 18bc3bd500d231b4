package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	// SessionCookieName is the HttpOnly cookie carrying the session id
	SessionCookieName = "fortuna_session"
	// LoginPath is where the browser is sent once its session is gone
	LoginPath = "/login"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// TokenKey is the context key for the API bearer token
	TokenKey contextKey = "token"
	// SessionIDKey is the context key for the browser session ID
	SessionIDKey contextKey = "session_id"
)

// SessionResolver looks up and clears browser sessions
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	Invalidate(ctx context.Context, sessionID uuid.UUID) error
}

// AuthMiddleware resolves the API token of a request. A token sent as
// "Authorization: Bearer" or "?token=" is used directly; otherwise the
// session cookie is looked up in the session store.
type AuthMiddleware struct {
	sessions     SessionResolver
	extractor    jwtmiddleware.TokenExtractor
	cookieSecure bool
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions SessionResolver, cookieSecure bool) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		extractor: jwtmiddleware.MultiTokenExtractor(
			jwtmiddleware.AuthHeaderTokenExtractor,
			jwtmiddleware.ParameterTokenExtractor("token"),
		),
		cookieSecure: cookieSecure,
	}
}

// Authenticate returns an Echo middleware that requires a token. When the
// downstream handler reports that the API rejected the token, the session
// is cleared, the cookie expired and a 401 pointing at the login page is
// returned.
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := m.extractor(c.Request())
			if err != nil {
				log.Debug().Err(err).Msg("Token extraction failed")
				return unauthorizedError(c, "Invalid authorization header format")
			}

			ctx := c.Request().Context()
			sessionID := uuid.Nil

			if token == "" {
				id, ok := SessionIDFromCookie(c)
				if !ok {
					return unauthorizedError(c, "Sign in required")
				}
				sess, err := m.sessions.Resolve(ctx, id)
				if err != nil {
					if !errors.Is(err, domain.ErrSessionNotFound) {
						log.Error().Err(err).Str("session_id", id.String()).Msg("Session lookup failed")
					}
					ExpireSessionCookie(c, m.cookieSecure)
					return unauthorizedError(c, "Session expired")
				}
				token = sess.Token
				sessionID = sess.ID
				ctx = context.WithValue(ctx, SessionIDKey, sessionID)
			}

			ctx = context.WithValue(ctx, TokenKey, token)
			c.SetRequest(c.Request().WithContext(ctx))

			err = next(c)
			if err != nil && errors.Is(err, domain.ErrUnauthorized) {
				return m.reject(c, sessionID)
			}
			return err
		}
	}
}

// reject clears the session the API no longer accepts
func (m *AuthMiddleware) reject(c echo.Context, sessionID uuid.UUID) error {
	if sessionID != uuid.Nil {
		if err := m.sessions.Invalidate(c.Request().Context(), sessionID); err != nil {
			log.Error().Err(err).Str("session_id", sessionID.String()).Msg("Failed to clear rejected session")
		}
		ExpireSessionCookie(c, m.cookieSecure)
	}
	return unauthorizedError(c, "Session is no longer valid")
}

// SetSessionCookie writes the session cookie for sess
func SetSessionCookie(c echo.Context, sess *domain.Session, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID.String(),
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ExpireSessionCookie tells the browser to drop the session cookie
func ExpireSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionIDFromCookie parses the session cookie of the request
func SessionIDFromCookie(c echo.Context) (uuid.UUID, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetToken extracts the API bearer token from the context
func GetToken(c echo.Context) string {
	if token, ok := c.Request().Context().Value(TokenKey).(string); ok {
		return token
	}
	return ""
}

// GetSessionID extracts the session ID from the context. It is uuid.Nil
// when the token was sent directly.
func GetSessionID(c echo.Context) uuid.UUID {
	if id, ok := c.Request().Context().Value(SessionIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
