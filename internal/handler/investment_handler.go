package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
)

// InvestmentHandler handles investment HTTP requests
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// GetInvestments godoc
// @Summary List investments
// @Description Investments with profit and profit percentage
// @Tags investments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.InvestmentView
// @Failure 401 {object} ProblemDetails
// @Router /investments [get]
func (h *InvestmentHandler) GetInvestments(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	views, err := h.investmentService.ListInvestments(c.Request().Context(), token)
	if err != nil {
		return handleServiceError(c, err, "get investments")
	}

	return c.JSON(http.StatusOK, views)
}

// GetPortfolioSummary godoc
// @Summary Portfolio summary
// @Tags investments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.PortfolioSummary
// @Failure 401 {object} ProblemDetails
// @Router /investments/summary [get]
func (h *InvestmentHandler) GetPortfolioSummary(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	summary, err := h.investmentService.GetPortfolioSummary(c.Request().Context(), token)
	if err != nil {
		return handleServiceError(c, err, "get portfolio summary")
	}

	return c.JSON(http.StatusOK, summary)
}

// CreateInvestment godoc
// @Summary Create an investment
// @Tags investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.InvestmentInput true "Investment"
// @Success 201 {object} domain.Investment
// @Failure 400 {object} ProblemDetails
// @Router /investments [post]
func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	var input domain.InvestmentInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	inv, err := h.investmentService.CreateInvestment(c.Request().Context(), token, input)
	if err != nil {
		return handleServiceError(c, err, "create investment")
	}

	return c.JSON(http.StatusCreated, inv)
}

// UpdateInvestment godoc
// @Summary Update an investment
// @Tags investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Investment ID"
// @Param request body domain.InvestmentInput true "Investment"
// @Success 200 {object} domain.Investment
// @Failure 404 {object} ProblemDetails
// @Router /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid investment ID", nil)
	}

	var input domain.InvestmentInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	inv, err := h.investmentService.UpdateInvestment(c.Request().Context(), token, id, input)
	if err != nil {
		return handleServiceError(c, err, "update investment")
	}

	return c.JSON(http.StatusOK, inv)
}

// DeleteInvestment godoc
// @Summary Delete an investment
// @Tags investments
// @Security BearerAuth
// @Param id path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ProblemDetails
// @Router /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid investment ID", nil)
	}

	if err := h.investmentService.DeleteInvestment(c.Request().Context(), token, id); err != nil {
		return handleServiceError(c, err, "delete investment")
	}

	return c.NoContent(http.StatusNoContent)
}
