package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/station-booking/internal/config"
	"github.com/station-booking/internal/delivery/http/handler"
	"github.com/station-booking/internal/delivery/http/middleware"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	auth   *middleware.Auth

	// Handlers
	authHandler    *handler.AuthHandler
	stationHandler *handler.StationHandler
	routeHandler   *handler.RouteHandler
	trainHandler   *handler.TrainHandler
	crewHandler    *handler.CrewHandler
	journeyHandler *handler.JourneyHandler
	orderHandler   *handler.OrderHandler
	ticketHandler  *handler.TicketHandler
}

// NewServer - creates a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	auth *middleware.Auth,
	authHandler *handler.AuthHandler,
	stationHandler *handler.StationHandler,
	routeHandler *handler.RouteHandler,
	trainHandler *handler.TrainHandler,
	crewHandler *handler.CrewHandler,
	journeyHandler *handler.JourneyHandler,
	orderHandler *handler.OrderHandler,
	ticketHandler *handler.TicketHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Station Booking Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		auth:           auth,
		authHandler:    authHandler,
		stationHandler: stationHandler,
		routeHandler:   routeHandler,
		trainHandler:   trainHandler,
		crewHandler:    crewHandler,
		journeyHandler: journeyHandler,
		orderHandler:   orderHandler,
		ticketHandler:  ticketHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - global middleware chain
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - route table
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Crew photos are served straight from the media directory.
	s.app.Static("/media", s.config.Media.Dir)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// User routes: registration and token endpoints are anonymous,
	// the profile requires a valid access token.
	users := api.Group("/users")
	users.Post("/register", s.authHandler.Register)
	users.Post("/token/login", s.authHandler.Login)
	users.Post("/token/refresh", s.authHandler.Refresh)
	users.Post("/token/verify", s.authHandler.Verify)
	users.Get("/me", s.auth.Required(), s.authHandler.Me)
	users.Put("/me", s.auth.Required(), s.authHandler.UpdateMe)

	// Reference data: any authenticated user may read, only admins may write.
	readOnly := []fiber.Handler{s.auth.Required(), s.auth.AdminOrReadOnly()}

	stations := api.Group("/stations", readOnly...)
	stations.Post("/", s.stationHandler.Create)
	stations.Get("/", s.stationHandler.List)
	stations.Get("/:id", s.stationHandler.Get)
	stations.Put("/:id", s.stationHandler.Update)
	stations.Delete("/:id", s.stationHandler.Delete)

	routes := api.Group("/routes", readOnly...)
	routes.Post("/", s.routeHandler.Create)
	routes.Get("/", s.routeHandler.List)
	routes.Get("/:id", s.routeHandler.Get)
	routes.Put("/:id", s.routeHandler.Update)
	routes.Delete("/:id", s.routeHandler.Delete)

	trainTypes := api.Group("/train-types", readOnly...)
	trainTypes.Post("/", s.trainHandler.CreateType)
	trainTypes.Get("/", s.trainHandler.ListTypes)
	trainTypes.Get("/:id", s.trainHandler.GetType)
	trainTypes.Put("/:id", s.trainHandler.UpdateType)
	trainTypes.Delete("/:id", s.trainHandler.DeleteType)

	trains := api.Group("/trains", readOnly...)
	trains.Post("/", s.trainHandler.Create)
	trains.Get("/", s.trainHandler.List)
	trains.Get("/:id", s.trainHandler.Get)
	trains.Put("/:id", s.trainHandler.Update)
	trains.Delete("/:id", s.trainHandler.Delete)

	crews := api.Group("/crews", readOnly...)
	crews.Post("/", s.crewHandler.Create)
	crews.Get("/", s.crewHandler.List)
	crews.Get("/:id", s.crewHandler.Get)
	crews.Put("/:id", s.crewHandler.Update)
	crews.Delete("/:id", s.crewHandler.Delete)
	crews.Post("/:id/image", s.auth.AdminOnly(), s.crewHandler.UploadImage)

	journeys := api.Group("/journeys", readOnly...)
	journeys.Post("/", s.journeyHandler.Create)
	journeys.Get("/", s.journeyHandler.List)
	journeys.Get("/:id", s.journeyHandler.Get)
	journeys.Put("/:id", s.journeyHandler.Update)
	journeys.Delete("/:id", s.journeyHandler.Delete)

	// Orders and tickets are scoped to the authenticated user.
	orders := api.Group("/orders", s.auth.Required())
	orders.Post("/", s.orderHandler.Create)
	orders.Get("/", s.orderHandler.List)
	orders.Get("/:id", s.orderHandler.Get)
	orders.Put("/:id", s.orderHandler.Update)

	tickets := api.Group("/tickets", s.auth.Required())
	tickets.Get("/", s.ticketHandler.List)
	tickets.Get("/:id", s.ticketHandler.Get)
	tickets.Put("/:id", s.ticketHandler.Update)
	tickets.Delete("/:id", s.ticketHandler.Delete)
}

// Start - starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - fallback handler for errors escaping the handlers
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
