package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/config"
	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/handler"
	"github.com/dafibh/fortuna/fortuna-web/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-web/internal/repository/postgres"
	"github.com/dafibh/fortuna/fortuna-web/internal/repository/remote"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/dafibh/fortuna/fortuna-web/internal/session"
	"github.com/dafibh/fortuna/fortuna-web/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const sessionSweepInterval = 10 * time.Minute

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Session store
	store, closeStore := openSessionStore(ctx, cfg)
	defer closeStore()

	// Remote API client
	client, err := remote.NewClient(cfg.APIBaseURL, cfg.APITimeout, remote.WithRateLimit(cfg.APIRateLimitPerMinute, cfg.RateLimitBurst))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create API client")
	}
	log.Info().Str("api", cfg.APIBaseURL).Dur("timeout", cfg.APITimeout).Msg("Using finance API")

	// Initialize repositories
	authRepo := remote.NewAuthRepository(client)
	expenseRepo := remote.NewExpenseRepository(client)
	incomeRepo := remote.NewIncomeRepository(client)
	recurringRepo := remote.NewRecurringExpenseRepository(client)
	paymentMethodRepo := remote.NewPaymentMethodRepository(client)
	investmentRepo := remote.NewInvestmentRepository(client)
	dashboardRepo := remote.NewDashboardRepository(client)

	// Live updates
	hub := websocket.NewHub()

	// Initialize services
	authService := service.NewAuthService(authRepo, store, cfg.SessionTTL)
	expenseService := service.NewExpenseService(expenseRepo)
	incomeService := service.NewIncomeService(incomeRepo)
	recurringService := service.NewRecurringService(recurringRepo)
	paymentMethodService := service.NewPaymentMethodService(paymentMethodRepo)
	investmentService := service.NewInvestmentService(investmentRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, recurringRepo)

	authService.SetEventPublisher(hub)
	expenseService.SetEventPublisher(hub)
	incomeService.SetEventPublisher(hub)
	recurringService.SetEventPublisher(hub)
	paymentMethodService.SetEventPublisher(hub)
	investmentService.SetEventPublisher(hub)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.CookieSecure)
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:          handler.NewAuthHandler(authService, cfg.CookieSecure),
		Expense:       handler.NewExpenseHandler(expenseService),
		Income:        handler.NewIncomeHandler(incomeService),
		Recurring:     handler.NewRecurringHandler(recurringService),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodService),
		Investment:    handler.NewInvestmentHandler(investmentService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		WebSocket:     handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.Validator{}

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(middleware.RequestLogger())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", handler.Health(hub))

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("session_store", cfg.SessionStore).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openSessionStore builds the configured AuthStore and returns its cleanup
func openSessionStore(ctx context.Context, cfg *config.Config) (domain.AuthStore, func()) {
	if cfg.SessionStore != config.SessionStorePostgres {
		store := session.NewMemoryStore()
		log.Info().Msg("Using in-memory session store")
		return store, store.Stop
	}

	// Connect to database
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Verify database connection
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	repo := postgres.NewSessionRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create sessions table")
	}

	go sweepSessions(ctx, repo, sessionSweepInterval)

	return repo, pool.Close
}

// sweepSessions deletes expired sessions until ctx is done
func sweepSessions(ctx context.Context, repo *postgres.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Error().Err(err).Msg("Failed to delete expired sessions")
				continue
			}
			if n > 0 {
				log.Debug().Int64("count", n).Msg("Expired sessions deleted")
			}
		}
	}
}
