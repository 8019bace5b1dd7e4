package main

// @title Station Booking Service API
// @version 1.0.0
// @description Backend for booking train tickets between stations. Manages the reference data of a rail network (stations, routes, trains, train types, crews), the journeys scheduled on it, and the orders placed by authenticated users.
// @description
// @description Main features:
// @description - CRUD for stations, routes, trains, train types, crews and journeys
// @description - Journey search by source, destination and departure date
// @description - Seat availability computed per journey
// @description - Atomic multi-ticket orders with per-seat conflict detection
// @description - JWT authentication with refresh token rotation

// @contact.name API Support
// @contact.email support@station-booking.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/station-booking/docs"
	"github.com/station-booking/internal/config"
	httpDelivery "github.com/station-booking/internal/delivery/http"
	"github.com/station-booking/internal/delivery/http/handler"
	"github.com/station-booking/internal/delivery/http/middleware"
	"github.com/station-booking/internal/pkg/logger"
	"github.com/station-booking/internal/pkg/token"
	"github.com/station-booking/internal/repository/cache"
	"github.com/station-booking/internal/repository/postgres"
	"github.com/station-booking/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Station Booking Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	stationRepo := postgres.NewStationRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	trainRepo := postgres.NewTrainRepository(db)
	trainTypeRepo := postgres.NewTrainTypeRepository(db)
	crewRepo := postgres.NewCrewRepository(db)
	journeyRepo := postgres.NewJourneyRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	userRepo := postgres.NewUserRepository(db)
	tokenRepo := cache.NewTokenRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)

	authUC := usecase.NewAuthUseCase(userRepo, tokenRepo, tokens, log)
	stationUC := usecase.NewStationUseCase(stationRepo, log)
	routeUC := usecase.NewRouteUseCase(routeRepo, stationRepo, log)
	trainUC := usecase.NewTrainUseCase(trainRepo, trainTypeRepo, log)
	crewUC := usecase.NewCrewUseCase(crewRepo, cfg.Media.Dir, log)
	journeyUC := usecase.NewJourneyUseCase(journeyRepo, routeRepo, trainRepo, crewRepo, log)
	bookingUC := usecase.NewBookingUseCase(orderRepo, ticketRepo, journeyRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	pager := handler.Pager{
		DefaultSize: cfg.Pagination.DefaultPageSize,
		MaxSize:     cfg.Pagination.MaxPageSize,
	}

	authHandler := handler.NewAuthHandler(authUC, log)
	stationHandler := handler.NewStationHandler(stationUC, pager, log)
	routeHandler := handler.NewRouteHandler(routeUC, pager, log)
	trainHandler := handler.NewTrainHandler(trainUC, pager, log)
	crewHandler := handler.NewCrewHandler(crewUC, pager, log)
	journeyHandler := handler.NewJourneyHandler(journeyUC, pager, log)
	orderHandler := handler.NewOrderHandler(bookingUC, pager, log)
	ticketHandler := handler.NewTicketHandler(bookingUC, pager, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	auth := middleware.NewAuth(tokens)

	server := httpDelivery.NewServer(
		cfg,
		log,
		auth,
		authHandler,
		stationHandler,
		routeHandler,
		trainHandler,
		crewHandler,
		journeyHandler,
		orderHandler,
		ticketHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
