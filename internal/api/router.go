package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mercatto/account-service/internal/api/handler"
	"github.com/mercatto/account-service/internal/api/middleware"
	"github.com/mercatto/account-service/internal/core/domain"
	"github.com/mercatto/account-service/internal/core/service"
	"github.com/mercatto/account-service/internal/infrastructure/db/postgres"
	"github.com/mercatto/account-service/internal/infrastructure/http/handlers"
	"github.com/mercatto/account-service/internal/pkg/config"
	"github.com/mercatto/account-service/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	repo := postgres.NewAccountRepository(pool)
	accountService := service.NewAccountService(repo)
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountService, repo, tokens)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(accountService)

	authenticate := middleware.Authenticate(tokens, repo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authenticate)

	// --- User routes (all authenticated) ---
	users := e.Group("/users", authenticate)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateMe)
	users.GET("/:id", userHandler.GetByID)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewHealthDependenciesHandler(pool)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness)    // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
