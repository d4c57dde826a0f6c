package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelgo/travel-api/internal/api/handler"
	"github.com/travelgo/travel-api/internal/api/middleware"
	"github.com/travelgo/travel-api/internal/core/ports"
	"github.com/travelgo/travel-api/internal/core/service"
	"github.com/travelgo/travel-api/internal/core/token"
	httphandlers "github.com/travelgo/travel-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs. Mongo, Redis and the
// catalog cache are optional: a nil Mongo/Redis handle only degrades the
// readiness probe, and a nil cache disables listing cache entirely.
type Dependencies struct {
	Users        ports.UserRepository
	Destinations ports.DestinationRepository
	Cache        ports.CatalogCache
	Codec        *token.Codec
	Logger       zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	// Metrics receives the HTTP middleware collectors. main passes the default
	// registerer; tests pass a fresh registry so routers can be built repeatedly.
	Metrics prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	if deps.Metrics == nil {
		deps.Metrics = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "travel",
		Registerer: deps.Metrics,
	}))

	// --- Dependencies ---
	userService := service.NewUserService(deps.Users, deps.Codec, deps.Logger)
	destinationService := service.NewDestinationService(deps.Destinations, deps.Cache, deps.Logger)

	authHandler := handler.NewAuthHandler(userService)
	roleCheckHandler := handler.NewRoleCheckHandler(deps.Logger)
	destinationHandler := handler.NewDestinationHandler(destinationService)

	guard := middleware.Guard(deps.Codec)
	adminOnly := middleware.RequireAdmin()

	// --- User routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/profile", authHandler.Profile, guard)

	// --- Role-check route ---
	e.GET("/auth", roleCheckHandler.Check, guard)

	// --- Destination catalog routes ---
	e.GET("/destinations", destinationHandler.List)
	e.POST("/addDestinations", destinationHandler.Add, guard, adminOnly)
	e.DELETE("/destinations/:id", destinationHandler.Delete, guard, adminOnly)

	// --- Operational endpoints ---
	healthHandler := httphandlers.NewHealthHandler()
	readinessHandler := httphandlers.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Check)
	e.GET("/metrics", echoprometheus.NewHandler()) // prometheus scrape target
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
