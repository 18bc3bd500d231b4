package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

// DashboardRepository implements domain.DashboardRepository
type DashboardRepository struct {
	client *Client
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

// Get retrieves the dashboard aggregate, optionally for a month (YYYY-MM)
func (r *DashboardRepository) Get(ctx context.Context, token string, month string) (*domain.DashboardData, error) {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}

	var data *domain.DashboardData
	if err := r.client.do(ctx, request{method: http.MethodGet, path: "dashboard", query: query, token: token}, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, invalidResponse(errEmptyBody)
	}
	return data, nil
}
