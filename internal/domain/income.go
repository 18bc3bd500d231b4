package domain

import "context"

// Income is a single dated earning entry
type Income struct {
	ID          ID      `json:"id" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Value       Amount  `json:"value"`
	Category    *string `json:"category,omitempty"`
	Date        Date    `json:"date"`
}

// IncomeInput carries the user-editable fields of an income
type IncomeInput struct {
	Description string  `json:"description" validate:"required,max=255"`
	Value       Amount  `json:"value" validate:"gt=0"`
	Category    *string `json:"category,omitempty"`
	Date        Date    `json:"date" validate:"required"`
}

// IncomeRepository is implemented by the remote API client
type IncomeRepository interface {
	List(ctx context.Context, token string, month string) ([]*Income, error)
	Create(ctx context.Context, token string, input IncomeInput) (*Income, error)
	Update(ctx context.Context, token string, id ID, input IncomeInput) (*Income, error)
	Delete(ctx context.Context, token string, id ID) error
}
