package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/themepick/api/internal/config"
	"github.com/themepick/api/internal/database"
	"github.com/themepick/api/internal/handler"
	"github.com/themepick/api/internal/jobs"
	"github.com/themepick/api/internal/middleware"
	"github.com/themepick/api/internal/repository"
	"github.com/themepick/api/internal/service"
	"github.com/themepick/api/migrations"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

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

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// One-time startup initialization: schema and the sampling function are
	// ensured here, never per-request. Both are idempotent.
	if err := migrations.Apply(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := service.NewProcedureInstaller(db).Ensure(ctx); err != nil {
		slog.Error("failed to install sampling function", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	themeRepo := repository.NewThemeRepository(db)
	extensionRepo := repository.NewExtensionRepository(db)

	// Initialize services
	sampler := service.NewSampler(service.SamplerConfig{
		DB:       db,
		BatchCap: cfg.Sampler.BatchCap,
	})

	themeService := service.NewThemeService(service.ThemeServiceConfig{
		ThemeRepo:     themeRepo,
		ExtensionRepo: extensionRepo,
		Sampler:       sampler,
	})

	extensionService := service.NewExtensionService(service.ExtensionServiceConfig{
		ExtensionRepo: extensionRepo,
	})

	integrityService := service.NewIntegrityService(service.IntegrityServiceConfig{
		ThemeRepo:     themeRepo,
		ExtensionRepo: extensionRepo,
		PageSize:      cfg.Sampler.PageSize,
	})

	seederService := service.NewSeederService(db)

	// Start background jobs
	integritySweeper := jobs.NewIntegritySweeper(integrityService, cfg.Jobs.IntegritySweepInterval)
	integritySweeper.Start()
	defer integritySweeper.Stop()

	// Initialize handlers
	themeHandler := handler.NewThemeHandler(themeService)
	extensionHandler := handler.NewExtensionHandler(extensionService)
	stylesheetHandler := handler.NewStylesheetHandler()
	healthHandler := handler.NewHealthHandler(db)
	adminSeederHandler := handler.NewAdminSeederHandler(seederService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Theme endpoints
	mux.HandleFunc("GET /v1/themes/random", themeHandler.Random)
	mux.HandleFunc("GET /v1/themes/stylesheet", stylesheetHandler.Get)

	// Extension endpoints
	mux.HandleFunc("PUT /v1/extensions", extensionHandler.Upsert)

	// Admin seeder endpoints (for development/testing)
	mux.HandleFunc("POST /v1/admin/seed", adminSeederHandler.Seed)
	mux.HandleFunc("DELETE /v1/admin/seed", adminSeederHandler.Cleanup)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
