package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
)

// IncomeHandler handles income HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// GetIncomes godoc
// @Summary List incomes
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {array} domain.Income
// @Failure 400 {object} ProblemDetails
// @Router /incomes [get]
func (h *IncomeHandler) GetIncomes(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	month, err := monthParam(c)
	if err != nil {
		return handleQueryError(c, err)
	}

	incomes, err := h.incomeService.ListIncomes(c.Request().Context(), token, month)
	if err != nil {
		return handleServiceError(c, err, "get incomes")
	}

	return c.JSON(http.StatusOK, incomes)
}

// CreateIncome godoc
// @Summary Create an income
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.IncomeInput true "Income"
// @Success 201 {object} domain.Income
// @Failure 400 {object} ProblemDetails
// @Router /incomes [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	var input domain.IncomeInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	income, err := h.incomeService.CreateIncome(c.Request().Context(), token, input)
	if err != nil {
		return handleServiceError(c, err, "create income")
	}

	return c.JSON(http.StatusCreated, income)
}

// UpdateIncome godoc
// @Summary Update an income
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Income ID"
// @Param request body domain.IncomeInput true "Income"
// @Success 200 {object} domain.Income
// @Failure 404 {object} ProblemDetails
// @Router /incomes/{id} [put]
func (h *IncomeHandler) UpdateIncome(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	var input domain.IncomeInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	income, err := h.incomeService.UpdateIncome(c.Request().Context(), token, id, input)
	if err != nil {
		return handleServiceError(c, err, "update income")
	}

	return c.JSON(http.StatusOK, income)
}

// DeleteIncome godoc
// @Summary Delete an income
// @Tags incomes
// @Security BearerAuth
// @Param id path string true "Income ID"
// @Success 204 "No Content"
// @Failure 404 {object} ProblemDetails
// @Router /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	if err := h.incomeService.DeleteIncome(c.Request().Context(), token, id); err != nil {
		return handleServiceError(c, err, "delete income")
	}

	return c.NoContent(http.StatusNoContent)
}
