package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Summary, recent transactions, category spending, monthly trend and recurring commitment
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} service.DashboardView
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	month, err := monthParam(c)
	if err != nil {
		return handleQueryError(c, err)
	}

	view, err := h.dashboardService.GetDashboard(c.Request().Context(), token, month)
	if err != nil {
		return handleServiceError(c, err, "get dashboard")
	}

	return c.JSON(http.StatusOK, view)
}
