package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

const expensesPath = "expenses"

// ExpenseRepository implements domain.ExpenseRepository
type ExpenseRepository struct {
	client *Client
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(client *Client) *ExpenseRepository {
	return &ExpenseRepository{client: client}
}

// List retrieves expenses, optionally narrowed to a month and category
func (r *ExpenseRepository) List(ctx context.Context, token string, filters domain.ExpenseFilters) ([]*domain.Expense, error) {
	query := url.Values{}
	if filters.Month != "" {
		query.Set("month", filters.Month)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}

	var expenses []*domain.Expense
	if err := r.client.do(ctx, request{method: http.MethodGet, path: expensesPath, query: query, token: token}, &expenses); err != nil {
		return nil, err
	}
	if err := checkList(expenses); err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []*domain.Expense{}
	}
	return expenses, nil
}

// GetByID retrieves a single expense
func (r *ExpenseRepository) GetByID(ctx context.Context, token string, id domain.ID) (*domain.Expense, error) {
	var expense *domain.Expense
	if err := r.client.do(ctx, request{method: http.MethodGet, path: itemPath(expensesPath, id), token: token}, &expense); err != nil {
		return nil, err
	}
	if err := checkOne(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Create creates a new expense
func (r *ExpenseRepository) Create(ctx context.Context, token string, input domain.ExpenseInput) (*domain.Expense, error) {
	var expense *domain.Expense
	if err := r.client.do(ctx, request{method: http.MethodPost, path: expensesPath, token: token, body: input}, &expense); err != nil {
		return nil, err
	}
	if err := checkOne(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Update replaces the editable fields of an expense
func (r *ExpenseRepository) Update(ctx context.Context, token string, id domain.ID, input domain.ExpenseInput) (*domain.Expense, error) {
	var expense *domain.Expense
	if err := r.client.do(ctx, request{method: http.MethodPut, path: itemPath(expensesPath, id), token: token, body: input}, &expense); err != nil {
		return nil, err
	}
	if err := checkOne(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense
func (r *ExpenseRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	return r.client.do(ctx, request{method: http.MethodDelete, path: itemPath(expensesPath, id), token: token}, nil)
}
