package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentMethodType string

const (
	PaymentMethodCreditCard PaymentMethodType = "credit-card"
	PaymentMethodDebitCard  PaymentMethodType = "debit-card"
	PaymentMethodPix        PaymentMethodType = "pix"
	PaymentMethodBankSlip   PaymentMethodType = "bank-slip"
	PaymentMethodCash       PaymentMethodType = "cash"
	PaymentMethodOther      PaymentMethodType = "other"
)

// Valid reports whether t is one of the known payment method types
func (t PaymentMethodType) Valid() bool {
	switch t {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix,
		PaymentMethodBankSlip, PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentMethod is a card, account or other means of paying for expenses.
// At most one payment method per user carries IsDefault.
type PaymentMethod struct {
	ID         ID                `json:"id" validate:"required"`
	Name       string            `json:"name" validate:"required"`
	Type       PaymentMethodType `json:"type"`
	LastDigits *string           `json:"lastDigits,omitempty"`
	IsDefault  bool              `json:"isDefault"`
	Limit      *Amount           `json:"limit,omitempty"`
	UsedLimit  *Amount           `json:"usedLimit,omitempty"`
}

// AvailableLimit returns limit minus used limit, or nil without a limit
func (p *PaymentMethod) AvailableLimit() *decimal.Decimal {
	if p.Limit == nil {
		return nil
	}
	available := p.Limit.Decimal
	if p.UsedLimit != nil {
		available = available.Sub(p.UsedLimit.Decimal)
	}
	return &available
}

// UsagePercentage returns the share of the limit already used, 0 without a limit
func (p *PaymentMethod) UsagePercentage() decimal.Decimal {
	if p.Limit == nil || p.UsedLimit == nil || !p.Limit.Decimal.IsPositive() {
		return decimal.Zero
	}
	return p.UsedLimit.Decimal.Div(p.Limit.Decimal).Mul(hundred)
}

// EnsureSingleDefault returns a copy of methods where only defaultID is
// flagged as default. The input slice and its elements are left untouched.
func EnsureSingleDefault(methods []*PaymentMethod, defaultID ID) []*PaymentMethod {
	out := make([]*PaymentMethod, len(methods))
	for i, m := range methods {
		cp := *m
		cp.IsDefault = m.ID == defaultID
		out[i] = &cp
	}
	return out
}

// DefaultPaymentMethod returns the first method flagged as default, if any
func DefaultPaymentMethod(methods []*PaymentMethod) *PaymentMethod {
	for _, m := range methods {
		if m.IsDefault {
			return m
		}
	}
	return nil
}

// PaymentMethodInput carries the user-editable fields of a payment method
type PaymentMethodInput struct {
	Name       string            `json:"name" validate:"required,max=255"`
	Type       PaymentMethodType `json:"type" validate:"required,payment_method_type"`
	LastDigits *string           `json:"lastDigits,omitempty" validate:"omitempty,len=4,numeric"`
	IsDefault  bool              `json:"isDefault"`
	Limit      *Amount           `json:"limit,omitempty" validate:"omitempty,gt=0"`
	UsedLimit  *Amount           `json:"usedLimit,omitempty" validate:"omitempty,gte=0"`
}

// PaymentMethodRepository is implemented by the remote API client
type PaymentMethodRepository interface {
	List(ctx context.Context, token string) ([]*PaymentMethod, error)
	Create(ctx context.Context, token string, input PaymentMethodInput) (*PaymentMethod, error)
	Update(ctx context.Context, token string, id ID, input PaymentMethodInput) (*PaymentMethod, error)
	SetDefault(ctx context.Context, token string, id ID) (*PaymentMethod, error)
	Delete(ctx context.Context, token string, id ID) error
}
