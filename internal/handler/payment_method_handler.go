package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// PaymentMethodHandler handles payment method HTTP requests
type PaymentMethodHandler struct {
	paymentMethodService *service.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(paymentMethodService *service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentMethodService: paymentMethodService}
}

// PaymentMethodResponse is a payment method with its derived limit figures
type PaymentMethodResponse struct {
	*domain.PaymentMethod
	AvailableLimit  *domain.Amount `json:"availableLimit,omitempty"`
	UsagePercentage domain.Amount  `json:"usagePercentage"`
}

func toPaymentMethodResponses(methods []*domain.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = toPaymentMethodResponse(m)
	}
	return out
}

func toPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	resp := PaymentMethodResponse{
		PaymentMethod:   m,
		UsagePercentage: domain.NewAmount(m.UsagePercentage().Round(2)),
	}
	if available := m.AvailableLimit(); available != nil {
		a := domain.NewAmount(*available)
		resp.AvailableLimit = &a
	}
	return resp
}

// GetPaymentMethods godoc
// @Summary List payment methods
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PaymentMethodResponse
// @Failure 401 {object} ProblemDetails
// @Router /payment-methods [get]
func (h *PaymentMethodHandler) GetPaymentMethods(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request().Context(), token)
	if err != nil {
		return handleServiceError(c, err, "get payment methods")
	}

	return c.JSON(http.StatusOK, toPaymentMethodResponses(methods))
}

// CreatePaymentMethod godoc
// @Summary Create a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.PaymentMethodInput true "Payment method"
// @Success 201 {object} PaymentMethodResponse
// @Failure 400 {object} ProblemDetails
// @Router /payment-methods [post]
func (h *PaymentMethodHandler) CreatePaymentMethod(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	var input domain.PaymentMethodInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request().Context(), token, input)
	if err != nil {
		return handleServiceError(c, err, "create payment method")
	}

	return c.JSON(http.StatusCreated, toPaymentMethodResponse(method))
}

// UpdatePaymentMethod godoc
// @Summary Update a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Param request body domain.PaymentMethodInput true "Payment method"
// @Success 200 {object} PaymentMethodResponse
// @Failure 404 {object} ProblemDetails
// @Router /payment-methods/{id} [put]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid payment method ID", nil)
	}

	var input domain.PaymentMethodInput
	if err := c.Bind(&input); err != nil {
		return bindError(c, err)
	}

	method, err := h.paymentMethodService.UpdatePaymentMethod(c.Request().Context(), token, id, input)
	if err != nil {
		return handleServiceError(c, err, "update payment method")
	}

	return c.JSON(http.StatusOK, toPaymentMethodResponse(method))
}

// SetDefaultPaymentMethod godoc
// @Summary Set the default payment method
// @Description Returns the refreshed list, in which only the chosen method is the default
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 200 {array} PaymentMethodResponse
// @Failure 404 {object} ProblemDetails
// @Router /payment-methods/{id}/default [patch]
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid payment method ID", nil)
	}

	methods, err := h.paymentMethodService.SetDefaultPaymentMethod(c.Request().Context(), token, id)
	if err != nil {
		return handleServiceError(c, err, "set default payment method")
	}

	log.Info().Str("payment_method_id", id.String()).Msg("Default payment method changed")

	return c.JSON(http.StatusOK, toPaymentMethodResponses(methods))
}

// DeletePaymentMethod godoc
// @Summary Delete a payment method
// @Tags payment-methods
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 204 "No Content"
// @Failure 404 {object} ProblemDetails
// @Router /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return NewUnauthorizedError(c, "Sign in required")
	}

	id, ok := pathID(c)
	if !ok {
		return NewValidationError(c, "Invalid payment method ID", nil)
	}

	if err := h.paymentMethodService.DeletePaymentMethod(c.Request().Context(), token, id); err != nil {
		return handleServiceError(c, err, "delete payment method")
	}

	return c.NoContent(http.StatusNoContent)
}
