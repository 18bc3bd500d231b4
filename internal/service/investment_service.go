package service

import (
	"context"
	"sort"
	"strings"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
	"github.com/shopspring/decimal"
)

// InvestmentView is an investment with its derived profit figures
type InvestmentView struct {
	*domain.Investment
	Profit           domain.Amount `json:"profit"`
	ProfitPercentage domain.Amount `json:"profitPercentage"`
}

// TypeAllocation is the share of the portfolio held in one investment type
type TypeAllocation struct {
	Type         domain.InvestmentType `json:"type"`
	CurrentValue domain.Amount         `json:"currentValue"`
	Percentage   domain.Amount         `json:"percentage"`
}

// PortfolioSummary totals a set of investments
type PortfolioSummary struct {
	TotalInvested    domain.Amount    `json:"totalInvested"`
	CurrentValue     domain.Amount    `json:"currentValue"`
	Profit           domain.Amount    `json:"profit"`
	ProfitPercentage domain.Amount    `json:"profitPercentage"`
	Allocation       []TypeAllocation `json:"allocation"`
}

// InvestmentService handles investment business logic
type InvestmentService struct {
	eventSource
	investmentRepo domain.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(investmentRepo domain.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investmentRepo: investmentRepo}
}

// ListInvestments retrieves investments with derived profit
func (s *InvestmentService) ListInvestments(ctx context.Context, token string) ([]InvestmentView, error) {
	investments, err := s.investmentRepo.List(ctx, token)
	if err != nil {
		return nil, err
	}

	views := make([]InvestmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, InvestmentView{
			Investment:       inv,
			Profit:           domain.NewAmount(inv.Profit()),
			ProfitPercentage: domain.NewAmount(inv.ProfitPercentage().Round(percentPlaces)),
		})
	}
	return views, nil
}

// GetPortfolioSummary totals all investments
func (s *InvestmentService) GetPortfolioSummary(ctx context.Context, token string) (*PortfolioSummary, error) {
	investments, err := s.investmentRepo.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return SummarizePortfolio(investments), nil
}

// SummarizePortfolio totals invested and current value, overall profit,
// and the allocation per type sorted by current value, largest first
func SummarizePortfolio(investments []*domain.Investment) *PortfolioSummary {
	invested, current := decimal.Zero, decimal.Zero
	byType := make(map[domain.InvestmentType]decimal.Decimal)

	for _, inv := range investments {
		if inv == nil {
			continue
		}
		invested = invested.Add(inv.Value.Decimal)
		current = current.Add(inv.CurrentValue.Decimal)
		byType[inv.Type] = byType[inv.Type].Add(inv.CurrentValue.Decimal)
	}

	profit := current.Sub(invested)
	summary := &PortfolioSummary{
		TotalInvested:    domain.NewAmount(invested),
		CurrentValue:     domain.NewAmount(current),
		Profit:           domain.NewAmount(profit),
		ProfitPercentage: domain.NewAmount(domain.Percentage(profit, invested).Round(percentPlaces)),
		Allocation:       make([]TypeAllocation, 0, len(byType)),
	}

	for typ, value := range byType {
		summary.Allocation = append(summary.Allocation, TypeAllocation{
			Type:         typ,
			CurrentValue: domain.NewAmount(value),
			Percentage:   domain.NewAmount(domain.Percentage(value, current).Round(percentPlaces)),
		})
	}
	sort.Slice(summary.Allocation, func(i, j int) bool {
		a, b := summary.Allocation[i], summary.Allocation[j]
		if !a.CurrentValue.Equal(b.CurrentValue.Decimal) {
			return a.CurrentValue.GreaterThan(b.CurrentValue.Decimal)
		}
		return a.Type < b.Type
	})

	return summary
}

// CreateInvestment validates and creates an investment
func (s *InvestmentService) CreateInvestment(ctx context.Context, token string, input domain.InvestmentInput) (*domain.Investment, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	inv, err := s.investmentRepo.Create(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Created(websocket.EntityTypeInvestment, inv))
	return inv, nil
}

// UpdateInvestment validates and updates an investment
func (s *InvestmentService) UpdateInvestment(ctx context.Context, token string, id domain.ID, input domain.InvestmentInput) (*domain.Investment, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	inv, err := s.investmentRepo.Update(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Updated(websocket.EntityTypeInvestment, inv))
	return inv, nil
}

// DeleteInvestment deletes an investment
func (s *InvestmentService) DeleteInvestment(ctx context.Context, token string, id domain.ID) error {
	if err := s.investmentRepo.Delete(ctx, token, id); err != nil {
		return err
	}
	s.publishEvent(token, websocket.Deleted(websocket.EntityTypeInvestment, id.String()))
	return nil
}
