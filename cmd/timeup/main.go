// Package main is the entry point for the TimeUp site server.
// It loads configuration, connects to the optional page cache, sets up
// routing, and starts the HTTP server with graceful shutdown support.
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

	"timeup/internal/cache"
	"timeup/internal/config"
	"timeup/internal/handlers"
	"timeup/internal/logging"
	"timeup/internal/middleware"
	"timeup/internal/render"
	"timeup/internal/router"
	"timeup/web"
)

func main() {
	// Load configuration from environment variables and an optional .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger, text or JSON as configured.
	logger := logging.New(os.Stdout, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"page_cache", cfg.CacheEnabled(),
		"trust_proxy", cfg.TrustProxy,
	)

	// Connect to Valkey for the full-page cache (optional, the site works
	// without it).
	var pageCache handlers.PageCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(context.Background(), cfg.ValkeyAddr(), cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, page cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
			pc := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
			// Drop pages rendered by a previous build.
			pc.InvalidateAll(context.Background())
			pageCache = pc
		}
	} else {
		slog.Warn("valkey not configured, page cache disabled")
	}

	assets, err := web.Assets()
	if err != nil {
		slog.Error("failed to open embedded assets", "error", err)
		os.Exit(1)
	}

	// In dev mode, pages load assets from CDN; in production they use
	// compiled local files embedded in the binary when `make assets` ran.
	renderer := render.New(cfg.IsDev(), cfg.SiteName, assets)
	if a := renderer.Assets(); !cfg.IsDev() && (!a.SiteCSS || !a.HTMX) {
		slog.Warn("compiled assets missing, loading from CDN",
			"site_css", a.SiteCSS,
			"htmx", a.HTMX,
		)
	}

	static, err := web.Static()
	if err != nil {
		slog.Error("failed to open embedded assets", "error", err)
		os.Exit(1)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	site := handlers.NewSite(renderer, pageCache)
	r := router.New(site, limiter, static, cfg.TrustProxy)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
