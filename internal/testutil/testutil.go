package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/league-profile-gateway/internal/api"
	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
	repoPostgres "github.com/dom/league-profile-gateway/internal/repository/postgres"
	"github.com/dom/league-profile-gateway/internal/riot"
	"github.com/dom/league-profile-gateway/internal/service"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestRiotAPIKey is the key the fake Riot server accepts.
const TestRiotAPIKey = "test-riot-api-key"

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a migrated connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_league_profile"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// TestConfig returns a configuration pointing at the given fakes
func TestConfig(riotServer *FakeRiot, dataDragon *FakeDataDragon) *config.Config {
	cfg := &config.Config{
		Port:           "0",
		Environment:    "test",
		LogLevel:       "error",
		RiotAPIKey:     TestRiotAPIKey,
		RegionPlatform: "br1",
		RegionRouting:  "americas",
		RiotTimeout:    5 * time.Second,
		CacheBackend:   config.CacheBackendNone,
		CacheMaxAge:    service.DefaultRotationMaxAge,
		S3Key:          "cache/champion_rotation.json",
		AWSRegion:      "us-east-1",
	}
	if riotServer != nil {
		cfg.RiotPlatformURL = riotServer.PlatformURL()
		cfg.RiotRoutingURL = riotServer.RoutingURL()
	}
	if dataDragon != nil {
		cfg.DataDragonBaseURL = dataDragon.URL()
	}
	return cfg
}

// TestServer holds all components for handler testing
type TestServer struct {
	Server     *httptest.Server
	Riot       *FakeRiot
	DataDragon *FakeDataDragon
	Cache      *MemoryRotationCache
	Services   *service.Services
	Config     *config.Config
	// Now is the fixed clock the rotation service reads.
	Now time.Time
}

// TestServerOption customises NewTestServer
type TestServerOption func(*testServerSettings)

type testServerSettings struct {
	withCache bool
}

// WithRotationCache backs the rotation endpoint with an in-memory cache
func WithRotationCache() TestServerOption {
	return func(s *testServerSettings) {
		s.withCache = true
	}
}

// NewTestServer creates a router served over httptest, wired to fake Riot and
// Data Dragon servers. The champion catalog is loaded from the fake before the
// server starts, so seed DataDragon first via seed.
func NewTestServer(t *testing.T, seed func(*FakeRiot, *FakeDataDragon), opts ...TestServerOption) *TestServer {
	t.Helper()

	settings := &testServerSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	riotServer := NewFakeRiot(t)
	dataDragon := NewFakeDataDragon(t)
	if seed != nil {
		seed(riotServer, dataDragon)
	}

	cfg := TestConfig(riotServer, dataDragon)

	ts := &TestServer{
		Riot:       riotServer,
		DataDragon: dataDragon,
		Config:     cfg,
		Now:        time.Now(),
	}

	repos := &repository.Repositories{}
	if settings.withCache {
		ts.Cache = NewMemoryRotationCache()
		repos.RotationCache = ts.Cache
	}

	riotClient := riot.NewClient(riot.Options{
		APIKey:      cfg.RiotAPIKey,
		PlatformURL: cfg.RiotPlatformURL,
		RoutingURL:  cfg.RiotRoutingURL,
		Timeout:     cfg.RiotTimeout,
	})
	champions := service.NewChampionService(cfg)
	catalog := champions.LoadCatalog(context.Background())

	services := service.NewServices(riotClient, champions, catalog, repos, nil, cfg)
	services.Rotation = service.NewRotationService(service.RotationServiceOptions{
		Riot:    riotClient,
		Catalog: catalog,
		Loader:  champions,
		Cache:   repos.RotationCache,
		MaxAge:  cfg.CacheMaxAge,
		Now:     func() time.Time { return ts.Now },
	})
	ts.Services = services

	ts.Server = httptest.NewServer(api.NewRouter(services, cfg))
	t.Cleanup(func() {
		ts.Server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// SeedRotationCache stores a document aged by age relative to the server clock
func (ts *TestServer) SeedRotationCache(t *testing.T, age time.Duration, champions []domain.Champion) {
	t.Helper()

	if ts.Cache == nil {
		t.Fatalf("test server has no rotation cache; use WithRotationCache")
	}
	ts.Cache.Set(domain.NewRotationDocument(ts.Now.Add(-age), champions))
}
