package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyWeekly  Frequency = "weekly"
)

// Valid reports whether f is one of the known frequencies
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyYearly, FrequencyWeekly:
		return true
	}
	return false
}

var (
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerYear  = decimal.NewFromInt(52)
)

// RecurringExpense is a template for a repeating obligation such as a
// subscription or a bill. DayOfMonth is meaningful for monthly and yearly
// records, DayOfWeek for weekly ones.
type RecurringExpense struct {
	ID            ID                 `json:"id" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Value         Amount             `json:"value"`
	Category      string             `json:"category"`
	Frequency     Frequency          `json:"frequency"`
	DayOfMonth    *int               `json:"dayOfMonth,omitempty"`
	DayOfWeek     *int               `json:"dayOfWeek,omitempty"`
	PaymentMethod *PaymentMethodType `json:"paymentMethod,omitempty"`
	IsActive      bool               `json:"isActive"`
	StartDate     Date               `json:"startDate"`
	EndDate       *Date              `json:"endDate,omitempty"`
}

// MonthlyEquivalent normalizes the record's value to a monthly cost.
// The second return is false when the frequency is unknown, in which case
// the contribution is zero.
func (r *RecurringExpense) MonthlyEquivalent() (decimal.Decimal, bool) {
	switch r.Frequency {
	case FrequencyMonthly:
		return r.Value.Decimal, true
	case FrequencyYearly:
		return r.Value.Decimal.Div(monthsPerYear), true
	case FrequencyWeekly:
		return r.Value.Decimal.Mul(weeksPerYear).Div(monthsPerYear), true
	default:
		return decimal.Zero, false
	}
}

// RecurringExpenseInput carries the user-editable fields of a recurring expense
type RecurringExpenseInput struct {
	Name          string             `json:"name" validate:"required,max=255"`
	Value         Amount             `json:"value" validate:"gt=0"`
	Category      string             `json:"category" validate:"required"`
	Frequency     Frequency          `json:"frequency" validate:"required,oneof=monthly yearly weekly"`
	DayOfMonth    *int               `json:"dayOfMonth,omitempty" validate:"required_if=Frequency monthly,omitempty,min=1,max=31"`
	DayOfWeek     *int               `json:"dayOfWeek,omitempty" validate:"required_if=Frequency weekly,omitempty,min=0,max=6"`
	PaymentMethod *PaymentMethodType `json:"paymentMethod,omitempty" validate:"omitempty,payment_method_type"`
	IsActive      bool               `json:"isActive"`
	StartDate     Date               `json:"startDate" validate:"required"`
	EndDate       *Date              `json:"endDate,omitempty"`
}

// Normalize drops the day field that does not apply to the frequency
func (in RecurringExpenseInput) Normalize() RecurringExpenseInput {
	switch in.Frequency {
	case FrequencyWeekly:
		in.DayOfMonth = nil
	default:
		in.DayOfWeek = nil
	}
	return in
}

// RecurringExpenseRepository is implemented by the remote API client
type RecurringExpenseRepository interface {
	List(ctx context.Context, token string) ([]*RecurringExpense, error)
	GetByID(ctx context.Context, token string, id ID) (*RecurringExpense, error)
	Create(ctx context.Context, token string, input RecurringExpenseInput) (*RecurringExpense, error)
	Update(ctx context.Context, token string, id ID, input RecurringExpenseInput) (*RecurringExpense, error)
	SetActive(ctx context.Context, token string, id ID, active bool, endDate *Date) (*RecurringExpense, error)
	Delete(ctx context.Context, token string, id ID) error
}
