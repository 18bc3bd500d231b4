package service

import (
	"context"
	"testing"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMethods(repo *testutil.MockPaymentMethodRepository) {
	repo.Methods = []*domain.PaymentMethod{
		{ID: "1", Name: "Visa", Type: domain.PaymentMethodCreditCard, IsDefault: true},
		{ID: "2", Name: "Pix", Type: domain.PaymentMethodPix},
		{ID: "3", Name: "Cash", Type: domain.PaymentMethodCash},
	}
}

func defaults(methods []*domain.PaymentMethod) []domain.ID {
	var out []domain.ID
	for _, m := range methods {
		if m.IsDefault {
			out = append(out, m.ID)
		}
	}
	return out
}

func TestPaymentMethodService_SetDefault_ExactlyOne(t *testing.T) {
	repo := testutil.NewMockPaymentMethodRepository()
	seedMethods(repo)
	publisher := testutil.NewMockEventPublisher()
	svc := NewPaymentMethodService(repo)
	svc.SetEventPublisher(publisher)

	methods, err := svc.SetDefaultPaymentMethod(context.Background(), "tok", "2")

	require.NoError(t, err)
	require.Len(t, methods, 3)
	assert.Equal(t, []domain.ID{"2"}, defaults(methods))
	assert.Equal(t, []string{"payment_method.default_changed"}, publisher.Types())
}

func TestPaymentMethodService_SetDefault_NotFound(t *testing.T) {
	repo := testutil.NewMockPaymentMethodRepository()
	seedMethods(repo)
	publisher := testutil.NewMockEventPublisher()
	svc := NewPaymentMethodService(repo)
	svc.SetEventPublisher(publisher)

	_, err := svc.SetDefaultPaymentMethod(context.Background(), "tok", "9")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, publisher.Events)
}

func TestPaymentMethodService_ListPaymentMethods_NormalizesDefault(t *testing.T) {
	repo := testutil.NewMockPaymentMethodRepository()
	seedMethods(repo)
	repo.Methods[2].IsDefault = true
	svc := NewPaymentMethodService(repo)

	methods, err := svc.ListPaymentMethods(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, []domain.ID{"1"}, defaults(methods))
	assert.True(t, repo.Methods[2].IsDefault, "repository data is left untouched")
}

func TestPaymentMethodService_ListPaymentMethods_NoDefault(t *testing.T) {
	repo := testutil.NewMockPaymentMethodRepository()
	repo.Methods = []*domain.PaymentMethod{{ID: "1", Name: "Cash", Type: domain.PaymentMethodCash}}
	svc := NewPaymentMethodService(repo)

	methods, err := svc.ListPaymentMethods(context.Background(), "tok")

	require.NoError(t, err)
	assert.Empty(t, defaults(methods))
}

func TestPaymentMethodService_CreatePaymentMethod(t *testing.T) {
	four := "1234"
	three := "123"
	letters := "12ab"
	limit := domain.MustAmount("5000")
	zero := domain.MustAmount("0")

	tests := []struct {
		name    string
		input   domain.PaymentMethodInput
		wantErr bool
	}{
		{"credit card with digits", domain.PaymentMethodInput{Name: "Visa", Type: domain.PaymentMethodCreditCard, LastDigits: &four, Limit: &limit}, false},
		{"cash", domain.PaymentMethodInput{Name: "Wallet", Type: domain.PaymentMethodCash}, false},
		{"unknown type", domain.PaymentMethodInput{Name: "X", Type: "cheque"}, true},
		{"three digits", domain.PaymentMethodInput{Name: "X", Type: domain.PaymentMethodDebitCard, LastDigits: &three}, true},
		{"non numeric digits", domain.PaymentMethodInput{Name: "X", Type: domain.PaymentMethodDebitCard, LastDigits: &letters}, true},
		{"zero limit", domain.PaymentMethodInput{Name: "X", Type: domain.PaymentMethodCreditCard, Limit: &zero}, true},
		{"blank name", domain.PaymentMethodInput{Name: " ", Type: domain.PaymentMethodCash}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockPaymentMethodRepository()
			svc := NewPaymentMethodService(repo)

			_, err := svc.CreatePaymentMethod(context.Background(), "tok", tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Empty(t, repo.Methods)
				return
			}
			require.NoError(t, err)
			assert.Len(t, repo.Methods, 1)
		})
	}
}

func TestPaymentMethodService_DeletePaymentMethod(t *testing.T) {
	repo := testutil.NewMockPaymentMethodRepository()
	seedMethods(repo)
	publisher := testutil.NewMockEventPublisher()
	svc := NewPaymentMethodService(repo)
	svc.SetEventPublisher(publisher)

	require.NoError(t, svc.DeletePaymentMethod(context.Background(), "tok", "3"))
	assert.Len(t, repo.Methods, 2)
	assert.Equal(t, []string{"payment_method.deleted"}, publisher.Types())
	assert.Equal(t, map[string]string{"id": "3"}, publisher.Events[0].Payload)
}
