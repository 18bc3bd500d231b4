package remote

import (
	"context"
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

var errEmptyBody = errors.New("empty body")

// AuthRepository implements domain.AuthRepository
type AuthRepository struct {
	client *Client
}

// NewAuthRepository creates a new AuthRepository
func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token
func (r *AuthRepository) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	var resp loginResponse
	if err := r.client.do(ctx, request{method: http.MethodPost, path: "auth/login", body: creds}, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, invalidResponse(errors.New("token missing"))
	}
	if resp.User != nil {
		if err := checkOne(resp.User); err != nil {
			return "", nil, err
		}
	}
	return resp.Token, resp.User, nil
}

// Logout revokes the token on the API side
func (r *AuthRepository) Logout(ctx context.Context, token string) error {
	return r.client.do(ctx, request{method: http.MethodPost, path: "auth/logout", token: token}, nil)
}

// Me returns the profile behind token
func (r *AuthRepository) Me(ctx context.Context, token string) (*domain.User, error) {
	var user *domain.User
	if err := r.client.do(ctx, request{method: http.MethodGet, path: "auth/me", token: token}, &user); err != nil {
		return nil, err
	}
	if err := checkOne(user); err != nil {
		return nil, err
	}
	return user, nil
}

// compile-time interface checks
var (
	_ domain.ExpenseRepository          = (*ExpenseRepository)(nil)
	_ domain.IncomeRepository           = (*IncomeRepository)(nil)
	_ domain.RecurringExpenseRepository = (*RecurringExpenseRepository)(nil)
	_ domain.PaymentMethodRepository    = (*PaymentMethodRepository)(nil)
	_ domain.InvestmentRepository       = (*InvestmentRepository)(nil)
	_ domain.DashboardRepository        = (*DashboardRepository)(nil)
	_ domain.AuthRepository             = (*AuthRepository)(nil)
)
