package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "REGION_PLATFORM", "REGION_ROUTING", "RIOT_PLATFORM_URL", "RIOT_ROUTING_URL",
		"RIOT_TIMEOUT_SECONDS", "CACHE_BACKEND", "S3_KEY", "CACHE_MAX_AGE_HOURS", "DDRAGON_BASE_URL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "6969", cfg.Port)
	assert.Equal(t, "https://br1.api.riotgames.com", cfg.RiotPlatformURL)
	assert.Equal(t, "https://americas.api.riotgames.com", cfg.RiotRoutingURL)
	assert.Equal(t, CacheBackendS3, cfg.CacheBackend)
	assert.Equal(t, "cache/champion_rotation.json", cfg.S3Key)
	assert.Equal(t, 7*24*time.Hour, cfg.CacheMaxAge)
	assert.Equal(t, 10*time.Second, cfg.RiotTimeout)
	assert.Equal(t, "https://ddragon.leagueoflegends.com", cfg.DataDragonBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	unsetenv(t, "RIOT_PLATFORM_URL")
	t.Setenv("REGION_PLATFORM", "euw1")
	t.Setenv("REGION_ROUTING", "europe")
	t.Setenv("RIOT_ROUTING_URL", "http://localhost:9000/routing/")
	t.Setenv("CACHE_BACKEND", "Postgres")
	t.Setenv("CACHE_MAX_AGE_HOURS", "24")
	t.Setenv("RIOT_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://euw1.api.riotgames.com", cfg.RiotPlatformURL)
	assert.Equal(t, "http://localhost:9000/routing", cfg.RiotRoutingURL)
	assert.Equal(t, CacheBackendPostgres, cfg.CacheBackend)
	assert.Equal(t, 24*time.Hour, cfg.CacheMaxAge)
	assert.Equal(t, 10*time.Second, cfg.RiotTimeout)
	assert.True(t, cfg.OTelEnabled)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "api key set", cfg: Config{RiotAPIKey: "k", CacheBackend: CacheBackendS3}},
		{name: "missing api key", cfg: Config{CacheBackend: CacheBackendNone}, wantErr: true},
		{name: "postgres without url", cfg: Config{RiotAPIKey: "k", CacheBackend: CacheBackendPostgres}, wantErr: true},
		{name: "postgres with url", cfg: Config{RiotAPIKey: "k", CacheBackend: CacheBackendPostgres, DatabaseURL: "postgres://db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_CacheEnabled(t *testing.T) {
	assert.True(t, (&Config{CacheBackend: CacheBackendS3, S3Bucket: "b"}).CacheEnabled())
	assert.False(t, (&Config{CacheBackend: CacheBackendS3}).CacheEnabled())
	assert.True(t, (&Config{CacheBackend: CacheBackendPostgres, DatabaseURL: "postgres://db"}).CacheEnabled())
	assert.False(t, (&Config{CacheBackend: CacheBackendNone, S3Bucket: "b"}).CacheEnabled())
}
