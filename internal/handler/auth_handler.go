package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService  *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// LoginResponse is returned after a successful sign-in. The session itself
// travels in the HttpOnly cookie.
type LoginResponse struct {
	User      *domain.User `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Login godoc
// @Summary Sign in
// @Description Exchanges credentials for an API token held in a server-side session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.Credentials true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return bindError(c, err)
	}

	result, err := h.authService.Login(c.Request().Context(), creds)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return NewUnauthorizedError(c, "Invalid email or password")
		}
		return handleServiceError(c, err, "sign in")
	}

	middleware.SetSessionCookie(c, result.Session, h.cookieSecure)

	return c.JSON(http.StatusOK, LoginResponse{
		User:      result.User,
		ExpiresAt: result.Session.ExpiresAt,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Revokes the API token and clears the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sessionID, ok := middleware.SessionIDFromCookie(c); ok {
		if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
			log.Error().Err(err).Str("session_id", sessionID.String()).Msg("Failed to clear session")
			return NewInternalError(c, "Failed to sign out")
		}
	}

	middleware.ExpireSessionCookie(c, h.cookieSecure)
	return c.NoContent(http.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} ProblemDetails
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return handleServiceError(c, err, "get current user")
	}

	return c.JSON(http.StatusOK, user)
}
