// Package app wires configuration into the clients, stores and services shared
// by the HTTP server and the refresh job.
package app

import (
	"context"
	"fmt"

	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/job"
	"github.com/dom/league-profile-gateway/internal/observability"
	"github.com/dom/league-profile-gateway/internal/repository"
	"github.com/dom/league-profile-gateway/internal/repository/postgres"
	"github.com/dom/league-profile-gateway/internal/repository/s3"
	"github.com/dom/league-profile-gateway/internal/riot"
	"github.com/dom/league-profile-gateway/internal/service"
	log "github.com/sirupsen/logrus"
)

// Closer releases whatever OpenRepositories opened.
type Closer func()

func NewRiotClient(cfg *config.Config, recorder riot.Recorder) *riot.Client {
	return riot.NewClient(riot.Options{
		APIKey:      cfg.RiotAPIKey,
		PlatformURL: cfg.RiotPlatformURL,
		RoutingURL:  cfg.RiotRoutingURL,
		Timeout:     cfg.RiotTimeout,
		Recorder:    recorder,
	})
}

// OpenRepositories connects the rotation cache selected by CACHE_BACKEND. When
// the backend is not configured the returned Repositories has a nil cache.
func OpenRepositories(ctx context.Context, cfg *config.Config) (*repository.Repositories, Closer, error) {
	noop := func() {}

	if !cfg.CacheEnabled() {
		log.WithField("backend", cfg.CacheBackend).Info("rotation cache disabled")
		return &repository.Repositories{}, noop, nil
	}

	switch cfg.CacheBackend {
	case config.CacheBackendS3:
		client, err := s3.NewClient(ctx, s3.ClientOptions{
			Region:   cfg.AWSRegion,
			Endpoint: cfg.S3Endpoint,
		})
		if err != nil {
			return nil, noop, err
		}
		log.WithFields(log.Fields{
			"bucket": cfg.S3Bucket,
			"key":    cfg.S3Key,
		}).Info("using S3 rotation cache")
		return s3.NewRepositories(client, cfg.S3Bucket, cfg.S3Key), noop, nil

	case config.CacheBackendPostgres:
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, fmt.Errorf("failed to get database handle: %w", err)
		}
		log.WithField("key", cfg.S3Key).Info("using postgres rotation cache")
		return postgres.NewRepositories(db, cfg.S3Key), func() { sqlDB.Close() }, nil
	}

	return &repository.Repositories{}, noop, nil
}

// RefreshSetup opens the configured cache for each refresh invocation. The
// catalog is loaded by the refresh itself, not here.
func RefreshSetup(metrics *observability.MetricsProvider) job.Setup {
	return func(ctx context.Context, cfg *config.Config) (job.Refresher, func(), error) {
		repos, closeRepos, err := OpenRepositories(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		riotClient := NewRiotClient(cfg, metrics)
		rotation := service.NewRotationService(service.RotationServiceOptions{
			Riot:    riotClient,
			Loader:  service.NewChampionService(cfg),
			Cache:   repos.RotationCache,
			MaxAge:  cfg.CacheMaxAge,
			Metrics: metrics,
		})
		return rotation, closeRepos, nil
	}
}
