package service

import (
	"context"
	"strings"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	eventSource
	expenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ListExpenses retrieves expenses matching filters
func (s *ExpenseService) ListExpenses(ctx context.Context, token string, filters domain.ExpenseFilters) ([]*domain.Expense, error) {
	return s.expenseRepo.List(ctx, token, filters)
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, token string, id domain.ID) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(ctx, token, id)
}

// CreateExpense validates and creates an expense
func (s *ExpenseService) CreateExpense(ctx context.Context, token string, input domain.ExpenseInput) (*domain.Expense, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.Create(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Created(websocket.EntityTypeExpense, expense))
	return expense, nil
}

// UpdateExpense validates and updates an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, token string, id domain.ID, input domain.ExpenseInput) (*domain.Expense, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.Update(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Updated(websocket.EntityTypeExpense, expense))
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, token string, id domain.ID) error {
	if err := s.expenseRepo.Delete(ctx, token, id); err != nil {
		return err
	}
	s.publishEvent(token, websocket.Deleted(websocket.EntityTypeExpense, id.String()))
	return nil
}

// ExpensesByCategory totals the filtered expenses per category
func (s *ExpenseService) ExpensesByCategory(ctx context.Context, token string, filters domain.ExpenseFilters) ([]domain.CategorySpending, error) {
	expenses, err := s.expenseRepo.List(ctx, token, filters)
	if err != nil {
		return nil, err
	}
	return SpendingByCategory(expenses), nil
}
