package remote

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

// ErrInvalidResponse marks a response body that decoded but failed schema checks
var ErrInvalidResponse = errors.New("invalid response payload")

func checkOne[T any](item *T) error {
	if item == nil {
		return invalidResponse(errEmptyBody)
	}
	if err := domain.Validate(item); err != nil {
		return invalidResponse(err)
	}
	return nil
}

func checkList[T any](items []*T) error {
	if err := domain.ValidateEach(items); err != nil {
		return invalidResponse(err)
	}
	return nil
}

// invalidResponse reports a schema failure as an upstream fault rather than
// a client input error.
func invalidResponse(err error) error {
	return &APIError{
		Status:  http.StatusBadGateway,
		Message: "response failed validation",
		Cause:   fmt.Errorf("%w: %s", ErrInvalidResponse, err.Error()),
	}
}

func itemPath(collection string, id domain.ID) string {
	return collection + "/" + url.PathEscape(id.String())
}
