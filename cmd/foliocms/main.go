// Package main is the entry point for the portfolio server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foliocms/internal/cache"
	"foliocms/internal/config"
	"foliocms/internal/database"
	"foliocms/internal/handlers"
	"foliocms/internal/mailer"
	"foliocms/internal/middleware"
	"foliocms/internal/render"
	"foliocms/internal/router"
	"foliocms/internal/session"
	"foliocms/internal/store"
)

func main() {
	// Structured logger — text output, debug level. Quiet enough for a
	// single-tenant site, detailed enough to trace cache behavior.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development content (no-op if content already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (page cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// HTML template renderer for the public page and admin interface.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	sectionStore := store.NewSectionStore(db)
	heroStore := store.NewHeroStore(db)
	submissionStore := store.NewSubmissionStore(db)

	// Full-page HTML cache in Valkey, one entry per audience.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Contact-form notifications via the email microservice.
	mail := mailer.New(cfg.EmailEndpoint, cfg.EmailToken)
	if !mail.Enabled() {
		slog.Warn("email token not configured — contact notifications disabled")
	}

	// Rate limiters for the unauthenticated POST endpoints.
	loginLimiter := middleware.NewRateLimiter(5, 1*time.Minute)
	defer loginLimiter.Stop()
	contactLimiter := middleware.NewRateLimiter(3, 1*time.Minute)
	defer contactLimiter.Stop()

	// Handler groups.
	publicHandlers := handlers.NewPublic(renderer, sectionStore, heroStore, submissionStore, mail, pageCache)
	adminHandlers := handlers.NewAdmin(renderer, sectionStore, heroStore, submissionStore, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, cfg.AdminPassword, cfg.AdminPasswordHash)

	// Chi router with all middleware and routes.
	r := router.New(sessionStore, publicHandlers, adminHandlers, authHandlers, loginLimiter, contactLimiter, secureCookies)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
