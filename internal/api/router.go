package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/marwa1454/formulaire/internal/api/handler"
	"github.com/marwa1454/formulaire/internal/api/middleware"
	"github.com/marwa1454/formulaire/internal/core/domain"
	"github.com/marwa1454/formulaire/internal/core/service"
	"github.com/marwa1454/formulaire/internal/infrastructure/config"
	"github.com/marwa1454/formulaire/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS,
	}))
	e.Use(echoprometheus.NewMiddleware("signalement"))

	// --- Dependencies ---
	sigRepo := postgres.NewSignalementRepository(db)
	sigService := service.NewSignalementService(sigRepo, log)
	sigHandler := handler.NewSignalementHandler(sigService)

	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTLDuration())
	authHandler := handler.NewAuthHandler(authService)
	authMW := middleware.Auth(authService)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api/v1")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMW)
	auth.GET("/health", authHandler.Health)

	// --- Signalement routes ---
	// Reads are public; mutations require a bearer token, deletion
	// additionally requires the ADMIN role.
	sig := api.Group("/signalements")
	sig.GET("", sigHandler.List)
	sig.GET("/statistiques", sigHandler.Stats)
	sig.GET("/recent", sigHandler.Recent)
	sig.GET("/search", sigHandler.Search)
	sig.GET("/agent/:id_agent", sigHandler.ByAgent)
	sig.GET("/:id", sigHandler.Get)
	sig.POST("", sigHandler.Create, authMW)
	sig.PUT("/:id", sigHandler.Update, authMW)
	sig.DELETE("/:id", sigHandler.Delete, authMW, middleware.RBAC(domain.RoleAdmin))

	return e
}
