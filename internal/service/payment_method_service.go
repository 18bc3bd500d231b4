package service

import (
	"context"
	"strings"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
	"github.com/rs/zerolog/log"
)

// PaymentMethodService handles payment method business logic
type PaymentMethodService struct {
	eventSource
	paymentMethodRepo domain.PaymentMethodRepository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(paymentMethodRepo domain.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{paymentMethodRepo: paymentMethodRepo}
}

// ListPaymentMethods retrieves payment methods with at most one default.
// When the API reports several, the first one wins.
func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context, token string) ([]*domain.PaymentMethod, error) {
	methods, err := s.paymentMethodRepo.List(ctx, token)
	if err != nil {
		return nil, err
	}

	def := domain.DefaultPaymentMethod(methods)
	if def == nil {
		return methods, nil
	}
	return domain.EnsureSingleDefault(methods, def.ID), nil
}

// CreatePaymentMethod validates and creates a payment method
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, token string, input domain.PaymentMethodInput) (*domain.PaymentMethod, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	method, err := s.paymentMethodRepo.Create(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Created(websocket.EntityTypePaymentMethod, method))
	return method, nil
}

// UpdatePaymentMethod validates and updates a payment method
func (s *PaymentMethodService) UpdatePaymentMethod(ctx context.Context, token string, id domain.ID, input domain.PaymentMethodInput) (*domain.PaymentMethod, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	method, err := s.paymentMethodRepo.Update(ctx, token, id, input)
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Updated(websocket.EntityTypePaymentMethod, method))
	return method, nil
}

// SetDefaultPaymentMethod makes id the default and returns the refreshed
// list, in which exactly that method is flagged as default
func (s *PaymentMethodService) SetDefaultPaymentMethod(ctx context.Context, token string, id domain.ID) ([]*domain.PaymentMethod, error) {
	if _, err := s.paymentMethodRepo.SetDefault(ctx, token, id); err != nil {
		return nil, err
	}

	methods, err := s.paymentMethodRepo.List(ctx, token)
	if err != nil {
		return nil, err
	}

	normalized := domain.EnsureSingleDefault(methods, id)
	if domain.DefaultPaymentMethod(normalized) == nil {
		log.Warn().
			Str("payment_method_id", id.String()).
			Msg("Default payment method missing from refreshed list")
	}

	s.publishEvent(token, websocket.PaymentMethodDefaultChanged(map[string]string{"id": id.String()}))
	return normalized, nil
}

// DeletePaymentMethod deletes a payment method
func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, token string, id domain.ID) error {
	if err := s.paymentMethodRepo.Delete(ctx, token, id); err != nil {
		return err
	}
	s.publishEvent(token, websocket.Deleted(websocket.EntityTypePaymentMethod, id.String()))
	return nil
}
