package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/bank_ledger_app/internal/core/services"
	"github.com/SscSPs/bank_ledger_app/internal/handlers"
	"github.com/SscSPs/bank_ledger_app/internal/platform/clock"
	"github.com/SscSPs/bank_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Bank Ledger API
// @version 1.0
// @description In-memory bank ledger: accounts, deposits, withdrawals and transfers.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := memory.NewRepositoryProvider()
	serviceContainer := services.NewServiceContainer(repos, services.WithClock(clock.System{}))

	r, err := handlers.NewRouter(cfg, logger, serviceContainer)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = srv.Shutdown(ctx)
	cancel()
	if err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
