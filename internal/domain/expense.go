package domain

import "context"

// Expense is a single dated spending entry
type Expense struct {
	ID            ID                 `json:"id" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Value         Amount             `json:"value"`
	Category      string             `json:"category"`
	Date          Date               `json:"date"`
	Description   *string            `json:"description,omitempty"`
	PaymentMethod *PaymentMethodType `json:"paymentMethod,omitempty"`
	IsRecurring   *bool              `json:"isRecurring,omitempty"`
}

// ExpenseInput carries the user-editable fields of an expense
type ExpenseInput struct {
	Name          string             `json:"name" validate:"required,max=255"`
	Value         Amount             `json:"value" validate:"gt=0"`
	Category      string             `json:"category" validate:"required"`
	Date          Date               `json:"date" validate:"required"`
	Description   *string            `json:"description,omitempty"`
	PaymentMethod *PaymentMethodType `json:"paymentMethod,omitempty" validate:"omitempty,payment_method_type"`
	IsRecurring   *bool              `json:"isRecurring,omitempty"`
}

// ExpenseFilters narrows an expense listing
type ExpenseFilters struct {
	Month    string // YYYY-MM
	Category string
}

// ExpenseRepository is implemented by the remote API client
type ExpenseRepository interface {
	List(ctx context.Context, token string, filters ExpenseFilters) ([]*Expense, error)
	GetByID(ctx context.Context, token string, id ID) (*Expense, error)
	Create(ctx context.Context, token string, input ExpenseInput) (*Expense, error)
	Update(ctx context.Context, token string, id ID, input ExpenseInput) (*Expense, error)
	Delete(ctx context.Context, token string, id ID) error
}
