package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "rentfit-backend/internal/api/http"
	"rentfit-backend/internal/config"
	"rentfit-backend/internal/logger"
	"rentfit-backend/internal/repository/postgres"
	"rentfit-backend/internal/security"
	"rentfit-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rentfit backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Services
	authSvc := service.NewAuthService(
		store.AdminRepository,
		store.UserRepository,
		tokenManager,
		cfg.AdminTokenTTL(),
		cfg.UserTokenTTL(),
	)
	renterSvc := service.NewRenterService(store.RenterRepository)
	carSvc := service.NewCarService(store.CarRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CarRepository, store.RenterRepository)
	workoutSvc := service.NewWorkoutService(store.WorkoutRepository)
	routineSvc := service.NewRoutineService(store.RoutineRepository, store.WorkoutRepository)

	// Initialize HTTP handlers and router
	handlers := httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Renter:  httpapi.NewRenterHandler(renterSvc),
		Car:     httpapi.NewCarHandler(carSvc),
		Rental:  httpapi.NewRentalHandler(rentalSvc),
		Workout: httpapi.NewWorkoutHandler(workoutSvc),
		Routine: httpapi.NewRoutineHandler(routineSvc),
	}
	router := httpapi.NewRouter(handlers, authMiddleware, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	<-shutdownCh
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
