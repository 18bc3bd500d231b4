package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

const incomesPath = "incomes"

// IncomeRepository implements domain.IncomeRepository
type IncomeRepository struct {
	client *Client
}

// NewIncomeRepository creates a new IncomeRepository
func NewIncomeRepository(client *Client) *IncomeRepository {
	return &IncomeRepository{client: client}
}

// List retrieves incomes, optionally for a single month (YYYY-MM)
func (r *IncomeRepository) List(ctx context.Context, token string, month string) ([]*domain.Income, error) {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}

	var incomes []*domain.Income
	if err := r.client.do(ctx, request{method: http.MethodGet, path: incomesPath, query: query, token: token}, &incomes); err != nil {
		return nil, err
	}
	if err := checkList(incomes); err != nil {
		return nil, err
	}
	if incomes == nil {
		incomes = []*domain.Income{}
	}
	return incomes, nil
}

// Create creates a new income
func (r *IncomeRepository) Create(ctx context.Context, token string, input domain.IncomeInput) (*domain.Income, error) {
	var income *domain.Income
	if err := r.client.do(ctx, request{method: http.MethodPost, path: incomesPath, token: token, body: input}, &income); err != nil {
		return nil, err
	}
	if err := checkOne(income); err != nil {
		return nil, err
	}
	return income, nil
}

// Update replaces the editable fields of an income
func (r *IncomeRepository) Update(ctx context.Context, token string, id domain.ID, input domain.IncomeInput) (*domain.Income, error) {
	var income *domain.Income
	if err := r.client.do(ctx, request{method: http.MethodPut, path: itemPath(incomesPath, id), token: token, body: input}, &income); err != nil {
		return nil, err
	}
	if err := checkOne(income); err != nil {
		return nil, err
	}
	return income, nil
}

// Delete removes an income
func (r *IncomeRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	return r.client.do(ctx, request{method: http.MethodDelete, path: itemPath(incomesPath, id), token: token}, nil)
}
