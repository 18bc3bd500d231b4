package remote

import (
	"fmt"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

// APIError is a failed call to the finance API. Status is 0 when the
// request never produced a response.
type APIError struct {
	Status  int
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("api error (status %d): %s: %v", e.Status, msg, e.Cause)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, msg)
}

// Unwrap exposes both the cause and the matching domain error, so callers
// can test with errors.Is(err, domain.ErrUnauthorized) and friends.
func (e *APIError) Unwrap() []error {
	errs := []error{e.kind()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (e *APIError) kind() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUpstream
	}
}
