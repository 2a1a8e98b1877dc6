package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/memory"
	mongostore "alcyxob/workout-tracker/internal/repository/mongo"
	sqlitestore "alcyxob/workout-tracker/internal/repository/sqlite"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (storage driver: %s).", cfg.Storage.Driver)

	// --- Initialize Storage Backend ---
	store, cleanup, err := buildStore(cfg.Storage)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize storage: %v", err)
	}
	defer cleanup()

	// --- Initialize Services ---
	workoutService := service.NewWorkoutService(store)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// buildStore selects the storage backend from configuration and returns it
// with a cleanup function for shutdown.
func buildStore(cfg config.StorageConfig) (repository.Store, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.DriverMemory:
		// Always seeded; a fresh in-memory plan per process is the point.
		return memory.New(), noop, nil

	case config.DriverSQLite:
		database, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		store := sqlitestore.NewStore(database)
		if cfg.Seed {
			if err := store.SeedDefaultPlan(context.Background()); err != nil {
				return nil, noop, fmt.Errorf("seed sqlite store: %w", err)
			}
		}
		return store, noop, nil

	case config.DriverMongo:
		client, err := mongostore.ConnectDB(cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongostore.DisconnectDB(client); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}
		store := mongostore.NewStore(client.Database(cfg.MongoDB))
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := store.EnsureIndexes(ctx); err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		if cfg.Seed {
			if err := store.SeedDefaultPlan(ctx); err != nil {
				cleanup()
				return nil, noop, fmt.Errorf("seed mongo store: %w", err)
			}
		}
		return store, cleanup, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
