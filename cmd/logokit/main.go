// Package main is the entry point for the LogoKit API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logokit/internal/auth"
	"logokit/internal/cache"
	"logokit/internal/config"
	"logokit/internal/database"
	"logokit/internal/handlers"
	"logokit/internal/mobile"
	"logokit/internal/router"
	"logokit/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
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

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (refresh tokens + one-time login codes).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	logoStore := store.NewLogoStore(db)
	layerStore := store.NewLayerStore(db)
	assetStore := store.NewAssetStore(db)
	fontStore := store.NewFontStore(db)
	categoryStore := store.NewCategoryStore(db)
	subscriptionStore := store.NewSubscriptionStore(db)

	// Auth services: JWT signing, Valkey-backed refresh tokens and OTP codes.
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, 0)
	refreshStore := auth.NewRefreshStore(valkeyClient)
	otpStore := auth.NewOTPStore(valkeyClient)

	// Document assembler for the mobile read surface.
	assembler := mobile.NewAssembler(mobile.NewStore(db))

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(userStore, tokens, refreshStore, otpStore)
	mobileHandlers := handlers.NewMobile(assembler)
	logoHandlers := handlers.NewLogos(logoStore, assembler)
	layerHandlers := handlers.NewLayers(logoStore, layerStore, logoHandlers)
	catalogHandlers := handlers.NewCatalog(assetStore, fontStore, categoryStore)
	billingHandlers := handlers.NewBilling(cfg.BillingWebhookSecret, subscriptionStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Deps{
		Tokens:        tokens,
		Subscriptions: subscriptionStore,
		Auth:          authHandlers,
		Mobile:        mobileHandlers,
		Logos:         logoHandlers,
		Layers:        layerHandlers,
		Catalog:       catalogHandlers,
		Billing:       billingHandlers,
	})

	// Create the HTTP server with sensible timeouts.
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

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
