package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/simpletest/user-api/docs" // registers the swagger spec

	"github.com/simpletest/user-api/internal/api/handler"
	"github.com/simpletest/user-api/internal/api/middleware"
	"github.com/simpletest/user-api/internal/core/ports"
)

// Dependencies groups everything the router wires into handlers.
type Dependencies struct {
	Logger    zerolog.Logger
	Users     ports.UserService
	Greetings ports.GreetingService
	System    ports.SystemService
	// Readiness lists the dependencies pinged by /health/ready, keyed by name.
	Readiness map[string]ports.Pinger
	// Development enables response-size debug logging.
	Development bool
	// Registerer and Gatherer back the HTTP metrics and /metrics.
	// Nil selects the Prometheus defaults.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.JSONSerializer = handler.NewJSONSerializer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	// Recover guards the outer middleware; handler panics are recovered and
	// logged by RequestLogger.
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "userapi",
		Registerer: registerer,
	}))
	e.Use(middleware.RequestLogger(middleware.RequestLoggerConfig{
		Logger:          deps.Logger,
		LogResponseSize: deps.Development,
	}))

	// --- Default routes ---
	appHandler := handler.NewAppHandler(deps.Greetings, deps.System)
	healthHandler := handler.NewHealthHandler(deps.Readiness)

	e.GET("/", appHandler.Root)
	e.GET("/hello", appHandler.Hello)
	e.GET("/system", appHandler.System)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the store reachable?

	// --- User routes ---
	userHandler := handler.NewUserHandler(deps.Users)

	users := e.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Docs & metrics ---
	e.GET("/api/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	return e
}
