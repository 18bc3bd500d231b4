package handler

import (
	"errors"
	"strings"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/labstack/echo/v4"
)

// pathID reads the :id path parameter
func pathID(c echo.Context) (domain.ID, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", false
	}
	return domain.ID(id), true
}

// MonthQuery holds an optional month filter
type MonthQuery struct {
	Month string `json:"month" query:"month" validate:"omitempty,datetime=2006-01"`
}

// monthParam binds and validates the ?month= parameter
func monthParam(c echo.Context) (string, error) {
	var q MonthQuery
	if err := c.Bind(&q); err != nil {
		return "", err
	}
	if err := c.Validate(q); err != nil {
		return "", err
	}
	return q.Month, nil
}

// handleQueryError reports query parameters that failed to bind or validate
func handleQueryError(c echo.Context, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return NewValidationError(c, "Invalid query parameters", toValidationErrors(verr.Fields))
	}
	return NewValidationError(c, "Invalid query parameters", nil)
}
