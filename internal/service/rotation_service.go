package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/observability"
	"github.com/dom/league-profile-gateway/internal/repository"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DefaultRotationMaxAge is how long a cached rotation document stays fresh.
const DefaultRotationMaxAge = 7 * 24 * time.Hour

// RotationService serves the free champion rotation, preferring the cached
// document written by Refresh.
type RotationService struct {
	riot    RiotAPI
	catalog *domain.ChampionCatalog
	loader  CatalogLoader
	cache   repository.RotationCacheRepository
	maxAge  time.Duration
	metrics RotationMetrics
	now     func() time.Time
}

type RotationServiceOptions struct {
	Riot    RiotAPI
	Catalog *domain.ChampionCatalog
	// Loader supplies a fresh catalog for each Refresh run.
	Loader CatalogLoader
	// Cache may be nil, in which case every read goes to Riot.
	Cache   repository.RotationCacheRepository
	MaxAge  time.Duration
	Metrics RotationMetrics
	Now     func() time.Time
}

func NewRotationService(opts RotationServiceOptions) *RotationService {
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultRotationMaxAge
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = domain.EmptyChampionCatalog()
	}
	return &RotationService{
		riot:    opts.Riot,
		catalog: catalog,
		loader:  opts.Loader,
		cache:   opts.Cache,
		maxAge:  maxAge,
		metrics: opts.Metrics,
		now:     now,
	}
}

// GetRotation returns the cached rotation when it is fresh and a live one
// otherwise. The live result is never written back to the cache.
func (s *RotationService) GetRotation(ctx context.Context) (*domain.Rotation, error) {
	if doc := s.freshDocument(ctx); doc != nil {
		return &domain.Rotation{
			Source:        domain.RotationSourceCache,
			FreeChampions: doc.FreeChampions,
		}, nil
	}

	champions, err := s.fetchRotation(ctx, s.catalog)
	if err != nil {
		return nil, err
	}
	return &domain.Rotation{
		Source:        domain.RotationSourceRiot,
		FreeChampions: champions,
	}, nil
}

// freshDocument returns the cached document if it is within maxAge. Absent,
// unreadable and stale documents all return nil.
func (s *RotationService) freshDocument(ctx context.Context) *domain.RotationDocument {
	if s.cache == nil {
		s.recordLookup(observability.CacheOutcomeDisabled)
		return nil
	}

	doc, err := s.cache.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			s.recordLookup(observability.CacheOutcomeMiss)
		} else {
			log.WithError(err).Warn("rotation cache read failed, fetching live rotation")
			s.recordLookup(observability.CacheOutcomeError)
		}
		return nil
	}

	if !doc.IsFresh(s.now(), s.maxAge) {
		log.WithFields(log.Fields{
			"timestamp": doc.Timestamp,
			"maxAge":    s.maxAge.String(),
		}).Info("rotation cache is stale, fetching live rotation")
		s.recordLookup(observability.CacheOutcomeStale)
		return nil
	}

	s.recordLookup(observability.CacheOutcomeHit)
	return doc
}

// Refresh fetches the live rotation with a freshly loaded catalog and
// overwrites the cached document. It returns the number of champions written.
func (s *RotationService) Refresh(ctx context.Context) (int, error) {
	runID := uuid.New()
	logger := log.WithField("run", runID.String())

	count, err := s.refresh(ctx)
	if err != nil {
		logger.WithError(err).Error("rotation refresh failed")
		s.recordRefresh(false)
		return 0, err
	}

	logger.WithField("count", count).Info("rotation refresh complete")
	s.recordRefresh(true)
	return count, nil
}

func (s *RotationService) refresh(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, domain.ErrNoCacheStore
	}

	catalog := s.catalog
	if s.loader != nil {
		catalog = s.loader.LoadCatalog(ctx)
	}

	champions, err := s.fetchRotation(ctx, catalog)
	if err != nil {
		return 0, err
	}

	doc := domain.NewRotationDocument(s.now(), champions)
	if err := s.cache.Put(ctx, doc); err != nil {
		return 0, err
	}
	return len(doc.FreeChampions), nil
}

func (s *RotationService) fetchRotation(ctx context.Context, catalog *domain.ChampionCatalog) ([]domain.Champion, error) {
	rotation, err := s.riot.ChampionRotation(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Resolve(rotation.FreeChampionIDs), nil
}

func (s *RotationService) recordLookup(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(outcome)
	}
}

func (s *RotationService) recordRefresh(success bool) {
	if s.metrics != nil {
		s.metrics.RecordRefresh(success)
	}
}
