package service

import (
	"context"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
	"github.com/rs/zerolog/log"
)

// RecurringService handles recurring expense business logic
type RecurringService struct {
	eventSource
	recurringRepo domain.RecurringExpenseRepository
	now           func() time.Time
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo domain.RecurringExpenseRepository) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		now:           time.Now,
	}
}

// ListRecurring retrieves all recurring expenses
func (s *RecurringService) ListRecurring(ctx context.Context, token string) ([]*domain.RecurringExpense, error) {
	return s.recurringRepo.List(ctx, token)
}

// GetSummary retrieves all recurring expenses and aggregates them
func (s *RecurringService) GetSummary(ctx context.Context, token string) (*RecurringSummary, error) {
	recs, err := s.recurringRepo.List(ctx, token)
	if err != nil {
		return nil, err
	}
	summary := Aggregate(recs)
	return &summary, nil
}

// CreateRecurring validates and creates a recurring expense
func (s *RecurringService) CreateRecurring(ctx context.Context, token string, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error) {
	input = s.prepare(input)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	rec, err := s.recurringRepo.Create(ctx, token, input.Normalize())
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Created(websocket.EntityTypeRecurringExpense, rec))
	return rec, nil
}

// UpdateRecurring validates and updates a recurring expense
func (s *RecurringService) UpdateRecurring(ctx context.Context, token string, id domain.ID, input domain.RecurringExpenseInput) (*domain.RecurringExpense, error) {
	input = s.prepare(input)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	rec, err := s.recurringRepo.Update(ctx, token, id, input.Normalize())
	if err != nil {
		return nil, err
	}
	s.publishEvent(token, websocket.Updated(websocket.EntityTypeRecurringExpense, rec))
	return rec, nil
}

// ToggleRecurring flips the active flag. Deactivating ends the schedule
// today; reactivating clears the end date.
func (s *RecurringService) ToggleRecurring(ctx context.Context, token string, id domain.ID) (*domain.RecurringExpense, error) {
	current, err := s.recurringRepo.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}

	active := !current.IsActive
	var endDate *domain.Date
	if !active {
		today := domain.DateOf(s.now())
		endDate = &today
	}

	rec, err := s.recurringRepo.SetActive(ctx, token, id, active, endDate)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("recurring_expense_id", id.String()).
		Bool("is_active", active).
		Msg("Recurring expense toggled")

	s.publishEvent(token, websocket.RecurringExpenseToggled(rec))
	return rec, nil
}

// DeleteRecurring deletes a recurring expense
func (s *RecurringService) DeleteRecurring(ctx context.Context, token string, id domain.ID) error {
	if err := s.recurringRepo.Delete(ctx, token, id); err != nil {
		return err
	}
	s.publishEvent(token, websocket.Deleted(websocket.EntityTypeRecurringExpense, id.String()))
	return nil
}

func (s *RecurringService) prepare(input domain.RecurringExpenseInput) domain.RecurringExpenseInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if input.StartDate.IsZero() {
		input.StartDate = domain.DateOf(s.now())
	}
	return input
}
