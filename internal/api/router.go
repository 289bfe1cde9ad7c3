package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/gameops/ticket-board/internal/api/handler"
	"github.com/gameops/ticket-board/internal/api/middleware"
	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// Deps carries everything the router needs. Services are built in main
// so the router stays free of storage concerns.
type Deps struct {
	Auth      ports.AuthService
	Roster    ports.RosterService
	Statuses  ports.StatusService
	Reports   ports.ReportService
	JWTSecret string
	Log       zerolog.Logger
	// Readiness checks run on GET /health/ready, one per backing store.
	Readiness []handler.ReadinessCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ticketboard"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Statuses)
	supervisorHandler := handler.NewSupervisorHandler(deps.Auth)
	playerHandler := handler.NewPlayerHandler(deps.Roster)
	statusHandler := handler.NewStatusHandler(deps.Statuses)
	reportHandler := handler.NewReportHandler(deps.Reports)
	healthHandler := handler.NewHealthHandler(deps.Readiness...)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Live)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Ready)     // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated API ---
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleSupervisor)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	v1.GET("/players", playerHandler.List, anyRole)
	v1.POST("/players", playerHandler.Add, anyRole)
	v1.DELETE("/players/:steam_id", playerHandler.Remove, anyRole)

	v1.GET("/statuses", statusHandler.List, anyRole)
	v1.PUT("/statuses/:steam_id", statusHandler.Set, anyRole)
	v1.DELETE("/statuses/:steam_id", statusHandler.Clear, anyRole)

	v1.POST("/reports", reportHandler.Build, anyRole)

	// Supervisor accounts are managed by the admin alone.
	v1.GET("/supervisors", supervisorHandler.List, anyRole)
	v1.POST("/supervisors", supervisorHandler.Register, adminOnly)
	v1.DELETE("/supervisors/:username", supervisorHandler.Remove, adminOnly)

	return e
}
