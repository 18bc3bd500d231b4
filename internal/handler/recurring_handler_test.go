package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/dafibh/fortuna/fortuna-web/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecurringHandler() (*echo.Echo, *RecurringHandler, *testutil.MockRecurringExpenseRepository) {
	e := echo.New()
	e.Validator = Validator{}
	recurringRepo := testutil.NewMockRecurringExpenseRepository()
	return e, NewRecurringHandler(service.NewRecurringService(recurringRepo)), recurringRepo
}

func seedRecurring(repo *testutil.MockRecurringExpenseRepository) {
	day := 5
	weekday := 1
	repo.AddRecurring(&domain.RecurringExpense{ID: "r1", Name: "Rent", Value: domain.MustAmount("100"), Category: "housing", Frequency: domain.FrequencyMonthly, DayOfMonth: &day, IsActive: true, StartDate: domain.NewDate(2025, 1, 1)})
	repo.AddRecurring(&domain.RecurringExpense{ID: "r2", Name: "Gym", Value: domain.MustAmount("50"), Category: "health", Frequency: domain.FrequencyMonthly, DayOfMonth: &day, IsActive: false, StartDate: domain.NewDate(2025, 1, 1)})
	repo.AddRecurring(&domain.RecurringExpense{ID: "r3", Name: "Insurance", Value: domain.MustAmount("1200"), Category: "insurance", Frequency: domain.FrequencyYearly, DayOfMonth: &day, IsActive: true, StartDate: domain.NewDate(2025, 1, 1)})
	repo.AddRecurring(&domain.RecurringExpense{ID: "r4", Name: "Cleaner", Value: domain.MustAmount("30"), Category: "housing", Frequency: domain.FrequencyWeekly, DayOfWeek: &weekday, IsActive: false, StartDate: domain.NewDate(2025, 1, 1)})
}

func TestGetRecurringSummary(t *testing.T) {
	e, handler, repo := setupRecurringHandler()
	seedRecurring(repo)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/recurring-expenses/summary", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetRecurringSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp RecurringSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Active, 2)
	require.Len(t, resp.Inactive, 2)
	assert.Equal(t, domain.ID("r1"), resp.Active[0].ID)
	assert.Equal(t, domain.ID("r3"), resp.Active[1].ID)
	assert.Equal(t, "200", resp.TotalMonthly.String())
	assert.Equal(t, "2400", resp.TotalYearly.String())
}

func TestGetRecurringSummary_Empty(t *testing.T) {
	e, handler, _ := setupRecurringHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/recurring-expenses/summary", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetRecurringSummary(c))
	assert.JSONEq(t, `{"active":[],"inactive":[],"totalMonthly":0,"totalYearly":0}`, rec.Body.String())
}

func TestGetRecurringExpenses(t *testing.T) {
	e, handler, repo := setupRecurringHandler()
	seedRecurring(repo)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/recurring-expenses", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetRecurringExpenses(c))

	var recs []domain.RecurringExpense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	assert.Len(t, recs, 4)
}

func TestCreateRecurring(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{
			name:       "monthly",
			body:       `{"name":"Streaming","value":39.9,"category":"entertainment","frequency":"monthly","dayOfMonth":10,"isActive":true,"startDate":"2025-06-01"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "weekly",
			body:       `{"name":"Market","value":80,"category":"food","frequency":"weekly","dayOfWeek":6,"isActive":true,"startDate":"2025-06-01"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "monthly without day of month",
			body:       `{"name":"Streaming","value":39.9,"category":"entertainment","frequency":"monthly","isActive":true,"startDate":"2025-06-01"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "dayOfMonth",
		},
		{
			name:       "day of week out of range",
			body:       `{"name":"Market","value":80,"category":"food","frequency":"weekly","dayOfWeek":7,"isActive":true,"startDate":"2025-06-01"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "dayOfWeek",
		},
		{
			name:       "unknown frequency",
			body:       `{"name":"Market","value":80,"category":"food","frequency":"daily","isActive":true,"startDate":"2025-06-01"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, handler, repo := setupRecurringHandler()

			c, rec := newJSONContext(e, http.MethodPost, "/api/v1/recurring-expenses", tt.body)
			setupAuthContext(c, "tok")

			require.NoError(t, handler.CreateRecurring(c))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantField == "" {
				assert.Len(t, repo.Recurring, 1)
				return
			}
			assert.Empty(t, repo.Recurring)
			problem := decodeProblem(t, rec)
			require.NotEmpty(t, problem.Errors)
			assert.Equal(t, tt.wantField, problem.Errors[0].Field)
		})
	}
}

func TestToggleRecurring(t *testing.T) {
	e, handler, repo := setupRecurringHandler()
	seedRecurring(repo)

	t.Run("deactivates an active record", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/recurring-expenses/r1/toggle", "")
		c.SetParamNames("id")
		c.SetParamValues("r1")
		setupAuthContext(c, "tok")

		require.NoError(t, handler.ToggleRecurring(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, repo.SetActiveCalls, 1)
		call := repo.SetActiveCalls[0]
		assert.False(t, call.Active)
		assert.NotNil(t, call.EndDate)
	})

	t.Run("reactivates an inactive record", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/recurring-expenses/r2/toggle", "")
		c.SetParamNames("id")
		c.SetParamValues("r2")
		setupAuthContext(c, "tok")

		require.NoError(t, handler.ToggleRecurring(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		call := repo.SetActiveCalls[len(repo.SetActiveCalls)-1]
		assert.Equal(t, domain.ID("r2"), call.ID)
		assert.True(t, call.Active)
		assert.Nil(t, call.EndDate)
	})

	t.Run("unknown record", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/recurring-expenses/nope/toggle", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")
		setupAuthContext(c, "tok")

		require.NoError(t, handler.ToggleRecurring(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteRecurring(t *testing.T) {
	e, handler, repo := setupRecurringHandler()
	seedRecurring(repo)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/recurring-expenses/r4", "")
	c.SetParamNames("id")
	c.SetParamValues("r4")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.DeleteRecurring(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, repo.Recurring, 3)
}
