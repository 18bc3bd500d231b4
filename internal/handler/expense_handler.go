package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseQuery holds the listing filters of an expense request
type ExpenseQuery struct {
	Month    string `json:"month" query:"month" validate:"omitempty,datetime=2006-01"`
	Category string `json:"category" query:"category" validate:"omitempty,max=100"`
}

func (h *ExpenseHandler) filters(c echo.Context) (domain.ExpenseFilters, error) {
	var q ExpenseQuery
	if err := c.Bind(&q); err != nil {
		return domain.ExpenseFilters{}, err
	}
	if err := c.Validate(q); err != nil {
		return domain.ExpenseFilters{}, err
	}
	return domain.ExpenseFilters{Month: q.Month, Category: q.Category}, nil
}

// GetExpenses godoc
// @Summary List expenses
// @Description List expenses, optionally for one month and category
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month (YYYY-MM)"
// @Param category query string false "Category"
// @Success 200 {array} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /expenses [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	filters, err := h.filters(c)
	if err != nil {
		return handleQueryError(c, err)
	}

	expenses, err := h.expenseService.ListExpenses(c.Request().Context(), token, filters)
	if err != nil {
		return handleServiceError(c, err, "get expenses")
	}

	return c.JSON(http.StatusOK, expenses)
}

// GetExpensesByCategory godoc
// @Summary Spending per category
// @Description Total expenses per category with each category's share, largest first
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {array} domain.CategorySpending
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /expenses/by-category [get]
func (h *ExpenseHandler) GetExpensesByCategory(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	filters, err := h.filters(c)
	if err != nil {
		return handleQueryError(c, err)
	}

	spending, err := h.expenseService.ExpensesByCategory(c.Request().Context(), token, filters)
	if err != nil {
		return handleServiceError(c, err, "get spending by category")
	}

	return c.JSON(http.StatusOK, spending)
}

// GetExpense handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	expense, err := h.expenseService.GetExpense(c.Request().Context(), token, id)
	if err != nil {
		return handleServiceError(c, err, "get expense")
	}

	return c.JSON(http.StatusOK, expense)
}

// CreateExpense godoc
// @Summary Create an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.ExpenseInput true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	var input domain.ExpenseInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), token, input)
	if err != nil {
		return handleServiceError(c, err, "create expense")
	}

	log.Info().Str("expense_id", expense.ID.String()).Str("category", expense.Category).Msg("Expense created")

	return c.JSON(http.StatusCreated, expense)
}

// UpdateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body domain.ExpenseInput true "Expense"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	var input domain.ExpenseInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	expense, err := h.expenseService.UpdateExpense(c.Request().Context(), token, id, input)
	if err != nil {
		return handleServiceError(c, err, "update expense")
	}

	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ProblemDetails
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), token, id); err != nil {
		return handleServiceError(c, err, "delete expense")
	}

	return c.NoContent(http.StatusNoContent)
}
