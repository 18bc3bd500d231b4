package remote

import (
	"context"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

const investmentsPath = "investments"

// InvestmentRepository implements domain.InvestmentRepository
type InvestmentRepository struct {
	client *Client
}

// NewInvestmentRepository creates a new InvestmentRepository
func NewInvestmentRepository(client *Client) *InvestmentRepository {
	return &InvestmentRepository{client: client}
}

// List retrieves all investments
func (r *InvestmentRepository) List(ctx context.Context, token string) ([]*domain.Investment, error) {
	var investments []*domain.Investment
	if err := r.client.do(ctx, request{method: http.MethodGet, path: investmentsPath, token: token}, &investments); err != nil {
		return nil, err
	}
	if err := checkList(investments); err != nil {
		return nil, err
	}
	if investments == nil {
		investments = []*domain.Investment{}
	}
	return investments, nil
}

// Create creates a new investment
func (r *InvestmentRepository) Create(ctx context.Context, token string, input domain.InvestmentInput) (*domain.Investment, error) {
	var investment *domain.Investment
	if err := r.client.do(ctx, request{method: http.MethodPost, path: investmentsPath, token: token, body: input}, &investment); err != nil {
		return nil, err
	}
	if err := checkOne(investment); err != nil {
		return nil, err
	}
	return investment, nil
}

// Update replaces the editable fields of an investment
func (r *InvestmentRepository) Update(ctx context.Context, token string, id domain.ID, input domain.InvestmentInput) (*domain.Investment, error) {
	var investment *domain.Investment
	if err := r.client.do(ctx, request{method: http.MethodPut, path: itemPath(investmentsPath, id), token: token, body: input}, &investment); err != nil {
		return nil, err
	}
	if err := checkOne(investment); err != nil {
		return nil, err
	}
	return investment, nil
}

// Delete removes an investment
func (r *InvestmentRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	return r.client.do(ctx, request{method: http.MethodDelete, path: itemPath(investmentsPath, id), token: token}, nil)
}
