// Package main is the entry point for the Expense Planner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/expense-planner/backend/config"
	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/infra/db"
	"github.com/expense-planner/backend/internal/infra/dependency"
	"github.com/expense-planner/backend/internal/integration/adapters"
	"github.com/expense-planner/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Planner API",
		"environment", cfg.Server.Environment,
		"storage_driver", cfg.Storage.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	store, healthChecker, closeStore, err := buildStateStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize state store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	clock := adapters.NewSystemClock()
	injector := dependency.NewInjector(cfg, store, clock, healthChecker)

	// Run the month-transition check on startup so recurring records are in
	// place before the first request.
	if output, err := injector.Rollover.Execute(context.Background()); err != nil {
		slog.Error("Startup month transition check failed", "error", err)
	} else if output.Performed {
		slog.Info("Month transition applied",
			"new_expenses", output.NewExpenses,
			"new_incomes", output.NewIncomes,
		)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// buildStateStore wires the state store selected by STORAGE_DRIVER.
func buildStateStore(cfg *config.Config) (adapter.StateStore, func() bool, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		healthChecker := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		closeStore := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}
		return persistence.NewRedisStateRepository(client), healthChecker, closeStore, nil

	case config.StorageDriverSQLite:
		return buildDatabaseStore(db.NewSQLiteConnection, cfg)

	default:
		return buildDatabaseStore(db.NewPostgresConnection, cfg)
	}
}

func buildDatabaseStore(
	connect func(*config.DatabaseConfig) (*db.Database, error),
	cfg *config.Config,
) (adapter.StateStore, func() bool, func(), error) {
	database, err := connect(&cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := database.AutoMigrate(&persistence.StateModel{}); err != nil {
		return nil, nil, nil, err
	}
	slog.Info("Database migrations completed successfully")

	closeStore := func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
	return persistence.NewStateRepository(database.DB()), database.HealthCheck, closeStore, nil
}
