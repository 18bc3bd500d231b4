package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RecurringHandler handles recurring expense HTTP requests
type RecurringHandler struct {
	recurringService *service.RecurringService
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService *service.RecurringService) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
	}
}

// RecurringSummaryResponse is the recurring summary in API responses
type RecurringSummaryResponse struct {
	Active       []*domain.RecurringExpense `json:"active"`
	Inactive     []*domain.RecurringExpense `json:"inactive"`
	TotalMonthly domain.Amount              `json:"totalMonthly"`
	TotalYearly  domain.Amount              `json:"totalYearly"`
}

// GetRecurringExpenses godoc
// @Summary List recurring expenses
// @Tags recurring-expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RecurringExpense
// @Failure 401 {object} ProblemDetails
// @Router /recurring-expenses [get]
func (h *RecurringHandler) GetRecurringExpenses(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	recs, err := h.recurringService.ListRecurring(c.Request().Context(), token)
	if err != nil {
		return handleServiceError(c, err, "get recurring expenses")
	}

	return c.JSON(http.StatusOK, recs)
}

// GetRecurringSummary godoc
// @Summary Recurring expense summary
// @Description Active and inactive recurring expenses with their monthly and yearly cost
// @Tags recurring-expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RecurringSummaryResponse
// @Failure 401 {object} ProblemDetails
// @Router /recurring-expenses/summary [get]
func (h *RecurringHandler) GetRecurringSummary(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	summary, err := h.recurringService.GetSummary(c.Request().Context(), token)
	if err != nil {
		return handleServiceError(c, err, "get recurring summary")
	}

	return c.JSON(http.StatusOK, RecurringSummaryResponse{
		Active:       summary.Active,
		Inactive:     summary.Inactive,
		TotalMonthly: summary.TotalMonthly,
		TotalYearly:  summary.TotalYearly,
	})
}

// CreateRecurring godoc
// @Summary Create a recurring expense
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.RecurringExpenseInput true "Recurring expense"
// @Success 201 {object} domain.RecurringExpense
// @Failure 400 {object} ProblemDetails
// @Router /recurring-expenses [post]
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	var input domain.RecurringExpenseInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	rec, err := h.recurringService.CreateRecurring(c.Request().Context(), token, input)
	if err != nil {
		return handleServiceError(c, err, "create recurring expense")
	}

	log.Info().Str("recurring_expense_id", rec.ID.String()).Str("frequency", string(rec.Frequency)).Msg("Recurring expense created")

	return c.JSON(http.StatusCreated, rec)
}

// UpdateRecurring godoc
// @Summary Update a recurring expense
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring expense ID"
// @Param request body domain.RecurringExpenseInput true "Recurring expense"
// @Success 200 {object} domain.RecurringExpense
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /recurring-expenses/{id} [put]
func (h *RecurringHandler) UpdateRecurring(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring expense ID", nil)
	}

	var input domain.RecurringExpenseInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	rec, err := h.recurringService.UpdateRecurring(c.Request().Context(), token, id, input)
	if err != nil {
		return handleServiceError(c, err, "update recurring expense")
	}

	return c.JSON(http.StatusOK, rec)
}

// ToggleRecurring godoc
// @Summary Toggle a recurring expense
// @Description Deactivating ends the schedule today; reactivating clears the end date
// @Tags recurring-expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recurring expense ID"
// @Success 200 {object} domain.RecurringExpense
// @Failure 404 {object} ProblemDetails
// @Router /recurring-expenses/{id}/toggle [patch]
func (h *RecurringHandler) ToggleRecurring(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring expense ID", nil)
	}

	rec, err := h.recurringService.ToggleRecurring(c.Request().Context(), token, id)
	if err != nil {
		return handleServiceError(c, err, "toggle recurring expense")
	}

	return c.JSON(http.StatusOK, rec)
}

// DeleteRecurring godoc
// @Summary Delete a recurring expense
// @Tags recurring-expenses
// @Security BearerAuth
// @Param id path string true "Recurring expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ProblemDetails
// @Router /recurring-expenses/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring expense ID", nil)
	}

	if err := h.recurringService.DeleteRecurring(c.Request().Context(), token, id); err != nil {
		return handleServiceError(c, err, "delete recurring expense")
	}

	return c.NoContent(http.StatusNoContent)
}
