package remote

import (
	"context"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
)

const recurringPath = "recurring-expenses"

// RecurringExpenseRepository implements domain.RecurringExpenseRepository
type RecurringExpenseRepository struct {
	client *Client
}

// NewRecurringExpenseRepository creates a new RecurringExpenseRepository
func NewRecurringExpenseRepository(client *Client) *RecurringExpenseRepository {
	return &RecurringExpenseRepository{client: client}
}

// List retrieves all recurring expenses, active and inactive
func (r *RecurringExpenseRepository) List(ctx context.Context, token string) ([]*domain.RecurringExpense, error) {
	var recs []*domain.RecurringExpense
	if err := r.client.do(ctx, request{method: http.MethodGet, path: recurringPath, token: token}, &recs); err != nil {
		return nil, err
	}
	if err := checkList(recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []*domain.RecurringExpense{}
	}
	return recs, nil
}

// GetByID retrieves a single recurring expense
func (r *RecurringExpenseRepository) GetByID(ctx context.Context, token string, id domain.ID) (*domain.RecurringExpense, error) {
	var rec *domain.RecurringExpense
	if err := r.client.do(ctx, request{method: http.MethodGet, path: itemPath(recurringPath, id), token: token}, &rec); err != nil {
		return nil, err
	}
	if err := checkOne(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Create creates a new recurring expense
func (r *RecurringExpenseRepository) Create(ctx context.Context, token string, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error) {
	var rec *domain.RecurringExpense
	if err := r.client.do(ctx, request{method: http.MethodPost, path: recurringPath, token: token, body: input.Normalize()}, &rec); err != nil {
		return nil, err
	}
	if err := checkOne(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update replaces the editable fields of a recurring expense
func (r *RecurringExpenseRepository) Update(ctx context.Context, token string, id domain.ID, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error) {
	var rec *domain.RecurringExpense
	if err := r.client.do(ctx, request{method: http.MethodPut, path: itemPath(recurringPath, id), token: token, body: input.Normalize()}, &rec); err != nil {
		return nil, err
	}
	if err := checkOne(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SetActive patches the active flag. endDate is always sent: a nil endDate
// goes out as an explicit null so the API clears a previous end date.
func (r *RecurringExpenseRepository) SetActive(ctx context.Context, token string, id domain.ID, active bool, endDate *domain.Date) (*domain.RecurringExpense, error) {
	patch := map[string]any{
		"isActive": active,
		"endDate":  nil,
	}
	if endDate != nil {
		patch["endDate"] = endDate.String()
	}

	var rec *domain.RecurringExpense
	if err := r.client.do(ctx, request{method: http.MethodPatch, path: itemPath(recurringPath, id), token: token, body: patch}, &rec); err != nil {
		return nil, err
	}
	if err := checkOne(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a recurring expense
func (r *RecurringExpenseRepository) Delete(ctx context.Context, token string, id domain.ID) error {
	return r.client.do(ctx, request{method: http.MethodDelete, path: itemPath(recurringPath, id), token: token}, nil)
}
