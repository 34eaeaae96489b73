package service

import (
	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
)

type Services struct {
	Champion *ChampionService
	Player   *PlayerService
	Rotation *RotationService
	Catalog  *domain.ChampionCatalog
}

// NewServices wires the services around an already loaded catalog.
func NewServices(riotAPI RiotAPI, champions *ChampionService, catalog *domain.ChampionCatalog, repos *repository.Repositories, metrics RotationMetrics, cfg *config.Config) *Services {
	var cache repository.RotationCacheRepository
	if repos != nil {
		cache = repos.RotationCache
	}

	return &Services{
		Champion: champions,
		Player:   NewPlayerService(riotAPI, catalog),
		Rotation: NewRotationService(RotationServiceOptions{
			Riot:    riotAPI,
			Catalog: catalog,
			Loader:  champions,
			Cache:   cache,
			MaxAge:  cfg.CacheMaxAge,
			Metrics: metrics,
		}),
		Catalog: catalog,
	}
}
