package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/service"
	"github.com/mergington/activities/internal/store"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the activity store with the fixed seed set
	activityStore := store.NewMemoryStore(store.Seed())

	slog.Info("activity store seeded")

	// Initialize services
	activityService := service.NewActivityService(service.ActivityServiceConfig{
		ActivityStore: activityStore,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Root redirect and static front-end
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Server.StaticDir))))

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Metrics endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Activity endpoints
	mux.HandleFunc("GET /activities", activityHandler.List)
	mux.HandleFunc("POST /activities/{name}/signup", activityHandler.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", activityHandler.Unregister)

	// Apply global middleware. Instrument sits innermost so the matched route
	// pattern is visible on the request after the mux runs.
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
		metrics.Instrument,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
