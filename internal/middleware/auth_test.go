package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	sessions    map[uuid.UUID]*domain.Session
	invalidated []uuid.UUID
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (f *fakeSessions) add(token string) *domain.Session {
	sess := &domain.Session{ID: uuid.New(), Token: token, ExpiresAt: time.Now().Add(time.Hour)}
	f.sessions[sess.ID] = sess
	return sess
}

func (f *fakeSessions) Resolve(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if sess, ok := f.sessions[id]; ok {
		return sess, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (f *fakeSessions) Invalidate(ctx context.Context, id uuid.UUID) error {
	f.invalidated = append(f.invalidated, id)
	delete(f.sessions, id)
	return nil
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problemDetails {
	t.Helper()
	var p problemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func expiredCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestAuthenticate_TokenSources(t *testing.T) {
	sessions := newFakeSessions()
	sess := sessions.add("cookie-token")

	tests := []struct {
		name        string
		setup       func(r *http.Request)
		target      string
		wantToken   string
		wantSession uuid.UUID
	}{
		{
			name:      "bearer header",
			setup:     func(r *http.Request) { r.Header.Set("Authorization", "Bearer header-token") },
			target:    "/api/v1/expenses",
			wantToken: "header-token",
		},
		{
			name:      "query parameter",
			setup:     func(r *http.Request) {},
			target:    "/ws?token=query-token",
			wantToken: "query-token",
		},
		{
			name: "session cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID.String()})
			},
			target:      "/api/v1/expenses",
			wantToken:   "cookie-token",
			wantSession: sess.ID,
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID.String()})
			},
			target:    "/api/v1/expenses",
			wantToken: "header-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotToken string
			var gotSession uuid.UUID
			handler := func(c echo.Context) error {
				gotToken = GetToken(c)
				gotSession = GetSessionID(c)
				return c.NoContent(http.StatusOK)
			}

			err := NewAuthMiddleware(sessions, false).Authenticate()(handler)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantToken, gotToken)
			assert.Equal(t, tt.wantSession, gotSession)
		})
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantDetail string
		wantExpire bool
	}{
		{
			name:       "no credentials",
			setup:      func(r *http.Request) {},
			wantDetail: "Sign in required",
		},
		{
			name:       "malformed header",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			wantDetail: "Invalid authorization header format",
		},
		{
			name: "garbage cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"})
			},
			wantDetail: "Sign in required",
		},
		{
			name: "unknown session",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: uuid.NewString()})
			},
			wantDetail: "Session expired",
			wantExpire: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			handler := func(c echo.Context) error {
				called = true
				return nil
			}

			err := NewAuthMiddleware(newFakeSessions(), false).Authenticate()(handler)(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			p := decodeProblem(t, rec)
			assert.Equal(t, tt.wantDetail, p.Detail)
			assert.Equal(t, LoginPath, p.Redirect)
			assert.Equal(t, tt.wantExpire, expiredCookie(rec))
		})
	}
}

func TestAuthenticate_UpstreamRejectionClearsSession(t *testing.T) {
	sessions := newFakeSessions()
	sess := sessions.add("stale-token")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID.String()})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return domain.ErrUnauthorized
	}

	err := NewAuthMiddleware(sessions, true).Authenticate()(handler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []uuid.UUID{sess.ID}, sessions.invalidated)
	assert.True(t, expiredCookie(rec))
	assert.Equal(t, LoginPath, decodeProblem(t, rec).Redirect)
}

func TestAuthenticate_UpstreamRejectionWithHeaderToken(t *testing.T) {
	sessions := newFakeSessions()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	req.Header.Set("Authorization", "Bearer raw")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewAuthMiddleware(sessions, false).Authenticate()(func(c echo.Context) error {
		return domain.ErrUnauthorized
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sessions.invalidated)
	assert.False(t, expiredCookie(rec))
}

func TestAuthenticate_OtherErrorsPassThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer raw")
	c := e.NewContext(req, httptest.NewRecorder())

	err := NewAuthMiddleware(newFakeSessions(), false).Authenticate()(func(c echo.Context) error {
		return domain.ErrUpstream
	})(c)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSessionCookies(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	sess := &domain.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	SetSessionCookie(c, sess, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sess.ID.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestGetters_Empty(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetToken(c))
	assert.Equal(t, uuid.Nil, GetSessionID(c))
	_, ok := SessionIDFromCookie(c)
	assert.False(t, ok)
}
