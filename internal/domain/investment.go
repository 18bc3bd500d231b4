package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type InvestmentType string

const (
	InvestmentStocks      InvestmentType = "stocks"
	InvestmentFixedIncome InvestmentType = "fixed-income"
	InvestmentFunds       InvestmentType = "funds"
	InvestmentCrypto      InvestmentType = "crypto"
	InvestmentRealEstate  InvestmentType = "real-estate"
	InvestmentOther       InvestmentType = "other"
)

var hundred = decimal.NewFromInt(100)

// Investment is a position with its invested and current value
type Investment struct {
	ID           ID             `json:"id" validate:"required"`
	Name         string         `json:"name" validate:"required"`
	Type         InvestmentType `json:"type"`
	Value        Amount         `json:"value"`
	CurrentValue Amount         `json:"currentValue"`
	PurchaseDate Date           `json:"purchaseDate"`
	Quantity     *Amount        `json:"quantity,omitempty"`
	Ticker       *string        `json:"ticker,omitempty"`
}

// Profit is current value minus invested value
func (i *Investment) Profit() decimal.Decimal {
	return i.CurrentValue.Decimal.Sub(i.Value.Decimal)
}

// ProfitPercentage is profit relative to the invested value, 0 when nothing was invested
func (i *Investment) ProfitPercentage() decimal.Decimal {
	if i.Value.Decimal.IsZero() {
		return decimal.Zero
	}
	return i.Profit().Div(i.Value.Decimal).Mul(hundred)
}

// InvestmentInput carries the user-editable fields of an investment
type InvestmentInput struct {
	Name         string         `json:"name" validate:"required,max=255"`
	Type         InvestmentType `json:"type" validate:"required,oneof=stocks fixed-income funds crypto real-estate other"`
	Value        Amount         `json:"value" validate:"gt=0"`
	CurrentValue Amount         `json:"currentValue" validate:"gte=0"`
	PurchaseDate Date           `json:"purchaseDate" validate:"required"`
	Quantity     *Amount        `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Ticker       *string        `json:"ticker,omitempty" validate:"omitempty,max=12"`
}

// InvestmentRepository is implemented by the remote API client
type InvestmentRepository interface {
	List(ctx context.Context, token string) ([]*Investment, error)
	Create(ctx context.Context, token string, input InvestmentInput) (*Investment, error)
	Update(ctx context.Context, token string, id ID, input InvestmentInput) (*Investment, error)
	Delete(ctx context.Context, token string, id ID) error
}
