package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// problemDetails represents an RFC 7807 Problem Details response
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// Error types
const (
	errorTypeUnauthorized = "https://fortuna.app/errors/unauthorized"
	errorTypeRateLimit    = "https://fortuna.app/errors/rate-limit"
	errorTypeHTTP         = "https://fortuna.app/errors/http"
	errorTypeInternal     = "https://fortuna.app/errors/internal"
)

// unauthorizedError creates an unauthorized error response that sends the
// browser back to the login page
func unauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, problemDetails{
		Type:     errorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Redirect: LoginPath,
	})
}

// ErrorHandler is an echo.HTTPErrorHandler that renders errors which
// escaped the handlers as problem details
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	problem := problemDetails{
		Type:     errorTypeInternal,
		Title:    http.StatusText(status),
		Instance: c.Request().URL.Path,
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		problem.Type = errorTypeHTTP
		problem.Title = http.StatusText(status)
		if msg, ok := he.Message.(string); ok {
			problem.Detail = msg
		}
	} else {
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled error")
	}
	problem.Status = status

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, problem)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}
