package remote

import (
	"context"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

const paymentMethodsPath = "payment-methods"

// PaymentMethodRepository implements domain.PaymentMethodRepository
type PaymentMethodRepository struct {
	client *Client
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository
func NewPaymentMethodRepository(client *Client) *PaymentMethodRepository {
	return &PaymentMethodRepository{client: client}
}

// List retrieves all payment methods
func (r *PaymentMethodRepository) List(ctx context.Context, token string) ([]*domain.PaymentMethod, error) {
	var methods []*domain.PaymentMethod
	if err := r.client.do(ctx, request{method: http.MethodGet, path: paymentMethodsPath, token: token}, &methods); err != nil {
		return nil, err
	}
	if err := checkList(methods); err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []*domain.PaymentMethod{}
	}
	return methods, nil
}

// Create creates a new payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, token string, input domain.PaymentMethodInput) (*domain.PaymentMethod, error) {
	var method *domain.PaymentMethod
	if err := r.client.do(ctx, request{method: http.MethodPost, path: paymentMethodsPath, token: token, body: input}, &method); err != nil {
		return nil, err
	}
	if err := checkOne(method); err != nil {
		return nil, err
	}
	return method, nil
}

// Update replaces the editable fields of a payment method
func (r *PaymentMethodRepository) Update(ctx context.Context, token string, id domain.ID, input domain.PaymentMethodInput) (*domain.PaymentMethod, error) {
	var method *domain.PaymentMethod
	if err := r.client.do(ctx, request{method: http.MethodPut, path: itemPath(paymentMethodsPath, id), token: token, body: input}, &method); err != nil {
		return nil, err
	}
	if err := checkOne(method); err != nil {
		return nil, err
	}
	return method, nil
}

// SetDefault marks a payment method as the default one
func (r *PaymentMethodRepository) SetDefault(ctx context.Context, token string, id domain.ID) (*domain.PaymentMethod, error) {
	var method *domain.PaymentMethod
	if err := r.client.do(ctx, request{method: http.MethodPatch, path: itemPath(paymentMethodsPath, id) + "/default", token: token}, &method); err != nil {
		return nil, err
	}
	if err := checkOne(method); err != nil {
		return nil, err
	}
	return method, nil
}

// Delete removes a payment method
func (r *PaymentMethodRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	return r.client.do(ctx, request{method: http.MethodDelete, path: itemPath(paymentMethodsPath, id), token: token}, nil)
}
