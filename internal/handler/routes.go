package handler

import (
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler of the web client
type Handlers struct {
	Auth          *AuthHandler
	Expense       *ExpenseHandler
	Income        *IncomeHandler
	Recurring     *RecurringHandler
	PaymentMethod *PaymentMethodHandler
	Investment    *InvestmentHandler
	Dashboard     *DashboardHandler
	WebSocket     *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	authenticated := []echo.MiddlewareFunc{authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter)}

	// Documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec())

	// Live updates
	e.GET("/ws", h.WebSocket.HandleWS, authMiddleware.Authenticate())

	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (login and logout are public, keyed by address for rate limiting)
	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login, middleware.RateLimitMiddleware(rateLimiter))
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.Me, authenticated...)

	// Expense routes (protected)
	expenses := api.Group("/expenses", authenticated...)
	expenses.GET("", h.Expense.GetExpenses)
	expenses.GET("/by-category", h.Expense.GetExpensesByCategory)
	expenses.POST("", h.Expense.CreateExpense)
	expenses.GET("/:id", h.Expense.GetExpense)
	expenses.PUT("/:id", h.Expense.UpdateExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	// Income routes (protected)
	incomes := api.Group("/incomes", authenticated...)
	incomes.GET("", h.Income.GetIncomes)
	incomes.POST("", h.Income.CreateIncome)
	incomes.PUT("/:id", h.Income.UpdateIncome)
	incomes.DELETE("/:id", h.Income.DeleteIncome)

	// Recurring expense routes (protected)
	recurring := api.Group("/recurring-expenses", authenticated...)
	recurring.GET("", h.Recurring.GetRecurringExpenses)
	recurring.GET("/summary", h.Recurring.GetRecurringSummary)
	recurring.POST("", h.Recurring.CreateRecurring)
	recurring.PUT("/:id", h.Recurring.UpdateRecurring)
	recurring.PATCH("/:id/toggle", h.Recurring.ToggleRecurring)
	recurring.DELETE("/:id", h.Recurring.DeleteRecurring)

	// Payment method routes (protected)
	paymentMethods := api.Group("/payment-methods", authenticated...)
	paymentMethods.GET("", h.PaymentMethod.GetPaymentMethods)
	paymentMethods.POST("", h.PaymentMethod.CreatePaymentMethod)
	paymentMethods.PUT("/:id", h.PaymentMethod.UpdatePaymentMethod)
	paymentMethods.PATCH("/:id/default", h.PaymentMethod.SetDefaultPaymentMethod)
	paymentMethods.DELETE("/:id", h.PaymentMethod.DeletePaymentMethod)

	// Investment routes (protected)
	investments := api.Group("/investments", authenticated...)
	investments.GET("", h.Investment.GetInvestments)
	investments.GET("/summary", h.Investment.GetPortfolioSummary)
	investments.POST("", h.Investment.CreateInvestment)
	investments.PUT("/:id", h.Investment.UpdateInvestment)
	investments.DELETE("/:id", h.Investment.DeleteInvestment)

	// Dashboard routes (protected)
	api.GET("/dashboard", h.Dashboard.GetDashboard, authenticated...)
}
