package service

import (
	"context"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/riot"
)

// RiotAPI is the set of upstream calls the services make.
type RiotAPI interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error)
	LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
	MasteriesByPUUID(ctx context.Context, puuid string) ([]riot.ChampionMastery, error)
	MatchIDsByPUUID(ctx context.Context, puuid string, count int) ([]string, error)
	Match(ctx context.Context, matchID string) (*riot.Match, error)
	MatchRaw(ctx context.Context, matchID string) (*riot.Response, error)
	ActiveGameByPUUID(ctx context.Context, puuid string) (*riot.ActiveGame, error)
	ChampionRotation(ctx context.Context) (*riot.ChampionRotation, error)
}

// CatalogLoader builds a champion catalog. It never fails; a failed load
// yields an empty catalog.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) *domain.ChampionCatalog
}

// RotationMetrics receives rotation cache and refresh observations.
type RotationMetrics interface {
	RecordCacheLookup(outcome string)
	RecordRefresh(success bool)
}
