package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/repository/remote"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/dafibh/fortuna/fortuna-web/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardHandler() (*echo.Echo, *DashboardHandler, *testutil.MockDashboardRepository) {
	e := echo.New()
	e.Validator = Validator{}
	dashRepo := &testutil.MockDashboardRepository{Data: &domain.DashboardData{
		Summary: domain.DashboardSummary{
			TotalIncome:   domain.MustAmount("4000"),
			TotalExpenses: domain.MustAmount("3000"),
		},
		CategorySpending: []domain.CategorySpending{
			{Category: "food", Amount: domain.MustAmount("1000")},
			{Category: "housing", Amount: domain.MustAmount("2000")},
		},
	}}
	recRepo := testutil.NewMockRecurringExpenseRepository()
	day := 1
	recRepo.AddRecurring(&domain.RecurringExpense{ID: "r1", Name: "Rent", Value: domain.MustAmount("2000"), Category: "housing", Frequency: domain.FrequencyMonthly, DayOfMonth: &day, IsActive: true})
	return e, NewDashboardHandler(service.NewDashboardService(dashRepo, recRepo)), dashRepo
}

func TestGetDashboard(t *testing.T) {
	e, handler, dashRepo := setupDashboardHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dashboard?month=2025-06", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetDashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"2025-06"}, dashRepo.Months)

	var view service.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "1000", view.Summary.Balance.String())
	assert.Equal(t, "25", view.Summary.SavingsRate.String())
	assert.Equal(t, "housing", view.CategorySpending[0].Category)
	assert.Equal(t, "66.67", view.CategorySpending[0].Percentage.String())
	require.NotNil(t, view.Recurring)
	assert.Equal(t, 1, view.Recurring.ActiveCount)
	assert.Equal(t, "24000", view.Recurring.TotalYearly.String())
}

func TestGetDashboard_DefaultsToCurrentMonth(t *testing.T) {
	e, handler, dashRepo := setupDashboardHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dashboard", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{""}, dashRepo.Months)
}

func TestGetDashboard_InvalidMonth(t *testing.T) {
	e, handler, dashRepo := setupDashboardHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dashboard?month=2025-13", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetDashboard(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, dashRepo.Months)
}

func TestGetDashboard_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"server error", &remote.APIError{Status: http.StatusInternalServerError, Message: "boom"}, http.StatusBadGateway},
		{"unreadable body", &remote.APIError{Status: http.StatusBadGateway, Message: "bad body", Cause: remote.ErrInvalidResponse}, http.StatusBadGateway},
		{"not found", &remote.APIError{Status: http.StatusNotFound, Message: "no data"}, http.StatusNotFound},
		{"unexpected", errors.New("dial tcp: refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, handler, dashRepo := setupDashboardHandler()
			dashRepo.Err = tt.err

			c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dashboard", "")
			setupAuthContext(c, "tok")

			require.NoError(t, handler.GetDashboard(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetDashboard_RejectedToken(t *testing.T) {
	e, handler, dashRepo := setupDashboardHandler()
	dashRepo.Err = &remote.APIError{Status: http.StatusUnauthorized, Message: "token expired"}

	c, _ := newJSONContext(e, http.MethodGet, "/api/v1/dashboard", "")
	setupAuthContext(c, "tok")

	err := handler.GetDashboard(c)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
