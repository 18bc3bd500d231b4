package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/repository/remote"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://fortuna.app/errors/validation"
	ErrorTypeNotFound     = "https://fortuna.app/errors/not-found"
	ErrorTypeUnauthorized = "https://fortuna.app/errors/unauthorized"
	ErrorTypeUpstream     = "https://fortuna.app/errors/upstream"
	ErrorTypeInternal     = "https://fortuna.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUpstreamError creates a bad gateway error response
func NewUpstreamError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadGateway, ProblemDetails{
		Type:     ErrorTypeUpstream,
		Title:    "Bad Gateway",
		Status:   http.StatusBadGateway,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// handleServiceError maps a service error to a problem response. API
// rejections of the token are returned unwritten so the auth middleware
// can end the session.
func handleServiceError(c echo.Context, err error, action string) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return NewValidationError(c, "Validation failed", toValidationErrors(verr.Fields))
	}

	var apiErr *remote.APIError
	isAPIErr := errors.As(err, &apiErr)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, "Resource not found")
	case errors.Is(err, remote.ErrInvalidResponse):
		log.Error().Err(err).Str("action", action).Msg("API returned an invalid payload")
		return NewUpstreamError(c, "The finance API returned an unexpected response")
	case errors.Is(err, domain.ErrInvalidInput):
		detail := "Invalid request"
		if isAPIErr && apiErr.Message != "" {
			detail = apiErr.Message
		}
		return NewValidationError(c, detail, nil)
	case errors.Is(err, domain.ErrUpstream):
		log.Error().Err(err).Str("action", action).Msg("API request failed")
		return NewUpstreamError(c, "The finance API is unavailable")
	}

	log.Error().Err(err).Str("action", action).Msg("Request failed")
	return NewInternalError(c, "Failed to "+action)
}

func toValidationErrors(fields []domain.FieldError) []ValidationError {
	out := make([]ValidationError, len(fields))
	for i, f := range fields {
		out[i] = ValidationError{Field: f.Field, Message: f.Message}
	}
	return out
}

// bindError reports a body that could not be decoded
func bindError(c echo.Context, err error) error {
	log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("Failed to bind request")
	return NewValidationError(c, "Invalid request body", nil)
}
