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

	"github.com/SscSPs/journal_backend/internal/core/services"
	"github.com/SscSPs/journal_backend/internal/handlers"
	"github.com/SscSPs/journal_backend/internal/middleware"
	"github.com/SscSPs/journal_backend/internal/platform/config"
	"github.com/SscSPs/journal_backend/internal/repositories/filestore"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
)

// @title Journal Backend API
// @version 1.0
// @description CRUD API for journal entries stored in a single JSON document.

// @host localhost:5000
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	repos := filestore.NewRepositoryProvider(afero.NewOsFs(), cfg.JournalFilePath())
	if err := repos.JournalStore.Ensure(middleware.WithLogger(context.Background(), logger)); err != nil {
		logger.Error("Failed to initialize journal document", slog.String("path", cfg.JournalFilePath()), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Journal document ready", slog.String("path", cfg.JournalFilePath()))

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewMemoryLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}
