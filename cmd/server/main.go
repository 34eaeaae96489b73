package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/league-profile-gateway/internal/api"
	"github.com/dom/league-profile-gateway/internal/app"
	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/observability"
	"github.com/dom/league-profile-gateway/internal/service"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	observability.SetupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()

	// Initialize metrics
	metrics := observability.NewMetricsProvider(cfg, "league-profile-gateway")
	if err := metrics.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	// Initialize rotation cache
	repos, closeRepos, err := app.OpenRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open rotation cache: %v", err)
	}
	defer closeRepos()

	// Load the champion catalog once, before serving
	riotClient := app.NewRiotClient(cfg, metrics)
	champions := service.NewChampionService(cfg)
	catalog := champions.LoadCatalog(ctx)

	// Initialize services
	services := service.NewServices(riotClient, champions, catalog, repos, metrics, cfg)

	// Initialize router
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithFields(log.Fields{
			"port":     cfg.Port,
			"platform": cfg.RegionPlatform,
			"routing":  cfg.RegionRouting,
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("failed to flush metrics")
	}

	log.Info("Server stopped")
}
