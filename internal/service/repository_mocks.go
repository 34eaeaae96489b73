package service

import (
	"context"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/riot"
	"github.com/stretchr/testify/mock"
)

// MockRotationCacheRepository is a mock implementation of repository.RotationCacheRepository
type MockRotationCacheRepository struct {
	mock.Mock
}

func (m *MockRotationCacheRepository) Get(ctx context.Context) (*domain.RotationDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RotationDocument), args.Error(1)
}

func (m *MockRotationCacheRepository) Put(ctx context.Context, doc *domain.RotationDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockRiotAPI is a mock implementation of RiotAPI
type MockRiotAPI struct {
	mock.Mock
}

func (m *MockRiotAPI) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.Account), args.Error(1)
}

func (m *MockRiotAPI) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]riot.LeagueEntry), args.Error(1)
}

func (m *MockRiotAPI) MasteriesByPUUID(ctx context.Context, puuid string) ([]riot.ChampionMastery, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]riot.ChampionMastery), args.Error(1)
}

func (m *MockRiotAPI) MatchIDsByPUUID(ctx context.Context, puuid string, count int) ([]string, error) {
	args := m.Called(ctx, puuid, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRiotAPI) Match(ctx context.Context, matchID string) (*riot.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.Match), args.Error(1)
}

func (m *MockRiotAPI) MatchRaw(ctx context.Context, matchID string) (*riot.Response, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.Response), args.Error(1)
}

func (m *MockRiotAPI) ActiveGameByPUUID(ctx context.Context, puuid string) (*riot.ActiveGame, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.ActiveGame), args.Error(1)
}

func (m *MockRiotAPI) ChampionRotation(ctx context.Context) (*riot.ChampionRotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.ChampionRotation), args.Error(1)
}

// MockCatalogLoader is a mock implementation of CatalogLoader
type MockCatalogLoader struct {
	mock.Mock
}

func (m *MockCatalogLoader) LoadCatalog(ctx context.Context) *domain.ChampionCatalog {
	args := m.Called(ctx)
	return args.Get(0).(*domain.ChampionCatalog)
}

// MockRotationMetrics is a mock implementation of RotationMetrics
type MockRotationMetrics struct {
	mock.Mock
}

func (m *MockRotationMetrics) RecordCacheLookup(outcome string) {
	m.Called(outcome)
}

func (m *MockRotationMetrics) RecordRefresh(success bool) {
	m.Called(success)
}
