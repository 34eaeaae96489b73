package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/domain"
	log "github.com/sirupsen/logrus"
)

// ChampionService builds the champion catalog from Data Dragon.
type ChampionService struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewChampionService(cfg *config.Config) *ChampionService {
	return &ChampionService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type DataDragonVersionResponse []string

type DataDragonChampionsResponse struct {
	Type    string                        `json:"type"`
	Format  string                        `json:"format"`
	Version string                        `json:"version"`
	Data    map[string]DataDragonChampion `json:"data"`
}

type DataDragonChampion struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// LoadCatalog fetches the catalog and falls back to an empty one on any
// failure. Callers never see an error: every lookup against the empty catalog
// reports domain.UnknownChampionName.
func (s *ChampionService) LoadCatalog(ctx context.Context) *domain.ChampionCatalog {
	catalog, err := s.FetchCatalog(ctx)
	if err != nil {
		log.WithError(err).Warn("failed loading Data Dragon, champion names will resolve to Unknown")
		return domain.EmptyChampionCatalog()
	}

	log.WithFields(log.Fields{
		"version":   catalog.Version(),
		"champions": catalog.Len(),
	}).Info("Data Dragon champions loaded")
	return catalog
}

// FetchCatalog fetches the latest champion dataset and keys it by each
// champion's numeric key.
func (s *ChampionService) FetchCatalog(ctx context.Context) (*domain.ChampionCatalog, error) {
	version, err := s.LatestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}

	championsURL := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", s.cfg.DataDragonBaseURL, version)
	var championsResp DataDragonChampionsResponse
	if err := s.getJSON(ctx, championsURL, &championsResp); err != nil {
		return nil, fmt.Errorf("failed to fetch champions: %w", err)
	}

	names := make(map[int]string, len(championsResp.Data))
	for _, c := range championsResp.Data {
		key, err := strconv.Atoi(c.Key)
		if err != nil {
			log.WithFields(log.Fields{
				"champion": c.ID,
				"key":      c.Key,
			}).Debug("skipping champion with non-numeric key")
			continue
		}
		names[key] = c.Name
	}

	return domain.NewChampionCatalog(version, names), nil
}

// LatestVersion returns the pinned DDRAGON_VERSION or the newest published one.
func (s *ChampionService) LatestVersion(ctx context.Context) (string, error) {
	if s.cfg.DataDragonVersion != "" {
		return s.cfg.DataDragonVersion, nil
	}

	var versions DataDragonVersionResponse
	if err := s.getJSON(ctx, s.cfg.DataDragonBaseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}

	return versions[0], nil
}

func (s *ChampionService) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
