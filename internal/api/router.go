package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tablebook/reservation-system/internal/api/handler"
	"github.com/tablebook/reservation-system/internal/api/middleware"
	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// Dependencies bundles everything the router needs wired in. The composition
// root (cmd/server) constructs services and repositories; the router only
// registers routes.
type Dependencies struct {
	Reservations ports.ReservationService
	Auth         ports.AuthService
	Activity     ports.ActivityRepository
	Denylist     middleware.DenylistChecker
	Mongo        *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reservations"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	reservationHandler := handler.NewReservationHandler(deps.Reservations)
	adminHandler := handler.NewAdminHandler(deps.Reservations, deps.Activity)
	authMiddleware := middleware.Auth(deps.JWTSecret, deps.Denylist)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Reservation routes (owner-scoped) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/reservations", reservationHandler.List)
	v1.POST("/reservations", reservationHandler.Create)
	v1.GET("/reservations/:id", reservationHandler.Get)
	v1.PUT("/reservations/:id", reservationHandler.Update)
	v1.DELETE("/reservations/:id", reservationHandler.Delete)

	// --- Admin reporting (read-only) ---
	admin := v1.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/reservations", adminHandler.List)
	admin.GET("/reservations/:id/activity", adminHandler.Activity)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
