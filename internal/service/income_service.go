package service

import (
	"context"
	"strings"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
)

// IncomeService handles income business logic
type IncomeService struct {
	eventSource
	incomeRepo domain.IncomeRepository
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo domain.IncomeRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

// ListIncomes retrieves incomes, optionally for one month (YYYY-MM)
func (s *IncomeService) ListIncomes(ctx context.Context, token string, month string) ([]*domain.Income, error) {
	return s.incomeRepo.List(ctx, token, month)
}

// CreateIncome validates and creates an income
func (s *IncomeService) CreateIncome(ctx context.Context, token string, input domain.IncomeInput) (*domain.Income, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	income, err := s.incomeRepo.Create(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Created(websocket.EntityTypeIncome, income))
	return income, nil
}

// UpdateIncome validates and updates an income
func (s *IncomeService) UpdateIncome(ctx context.Context, token string, id domain.ID, input domain.IncomeInput) (*domain.Income, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	income, err := s.incomeRepo.Update(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Updated(websocket.EntityTypeIncome, income))
	return income, nil
}

// DeleteIncome deletes an income
func (s *IncomeService) DeleteIncome(ctx context.Context, token string, id domain.ID) error {
	if err := s.incomeRepo.Delete(ctx, token, id); err != nil {
		return err
	}
	s.publishEvent(token, websocket.Deleted(websocket.EntityTypeIncome, id.String()))
	return nil
}
