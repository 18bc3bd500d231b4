package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed validation rule. Field is the JSON
// (camelCase) name of the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload fails schema validation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Amounts compare as floats; a malformed amount fails every bound.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		a, ok := field.Interface().(Amount)
		if !ok {
			return nil
		}
		if a.Malformed {
			return float64(-1)
		}
		f, _ := a.Decimal.Float64()
		return f
	}, Amount{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Date); ok {
			return d.Time
		}
		return nil
	}, Date{})

	_ = v.RegisterValidation("payment_method_type", func(fl validator.FieldLevel) bool {
		return PaymentMethodType(fl.Field().String()).Valid()
	})

	return v
}

// Validate checks v against its validate struct tags. Failures are
// returned as *ValidationError, which matches ErrInvalidInput.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

// ValidateEach validates every element and reports the first failure
func ValidateEach[T any](items []*T) error {
	for i, item := range items {
		if item == nil {
			return &ValidationError{Fields: []FieldError{{Field: fmt.Sprintf("[%d]", i), Message: "must not be null"}}}
		}
		if err := Validate(item); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				for j := range verr.Fields {
					verr.Fields[j].Field = fmt.Sprintf("[%d].%s", i, verr.Fields[j].Field)
				}
			}
			return err
		}
	}
	return nil
}

// fieldPath drops the root struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "must contain only digits"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "payment_method_type":
		return "must be one of: credit-card, debit-card, pix, bank-slip, cash, other"
	default:
		return "is invalid"
	}
}
