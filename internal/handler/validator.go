package handler

import "github.com/dafibh/fortuna/fortuna-web/internal/domain"

// Validator adapts domain validation to echo.Validator
type Validator struct{}

// Validate implements echo.Validator
func (Validator) Validate(i interface{}) error {
	return domain.Validate(i)
}
