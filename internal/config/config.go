package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends for the champion rotation document
const (
	CacheBackendS3       = "s3"
	CacheBackendPostgres = "postgres"
	CacheBackendNone     = "none"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Riot API
	RiotAPIKey      string
	RegionPlatform  string
	RegionRouting   string
	RiotPlatformURL string
	RiotRoutingURL  string
	RiotTimeout     time.Duration

	// Data Dragon
	DataDragonBaseURL string
	DataDragonVersion string

	// Rotation cache
	CacheBackend string
	CacheMaxAge  time.Duration
	S3Bucket     string
	S3Key        string
	S3Endpoint   string
	AWSRegion    string
	DatabaseURL  string

	// OpenTelemetry
	OTelEnabled        bool
	OTelExporterType   string
	OTelOTLPEndpoint   string
	OTelExportInterval time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "6969"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RiotAPIKey:        getEnv("RIOT_API_KEY", ""),
		RegionPlatform:    getEnv("REGION_PLATFORM", "br1"),
		RegionRouting:     getEnv("REGION_ROUTING", "americas"),
		RiotTimeout:       time.Duration(getEnvInt("RIOT_TIMEOUT_SECONDS", 10)) * time.Second,
		DataDragonBaseURL: strings.TrimRight(getEnv("DDRAGON_BASE_URL", "https://ddragon.leagueoflegends.com"), "/"),
		DataDragonVersion: getEnv("DDRAGON_VERSION", ""),
		CacheBackend:      strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendS3)),
		CacheMaxAge:       time.Duration(getEnvInt("CACHE_MAX_AGE_HOURS", 24*7)) * time.Hour,
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Key:             getEnv("S3_KEY", "cache/champion_rotation.json"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		OTelEnabled:       getEnvBool("OTEL_ENABLED", false),
		OTelExporterType:  getEnv("OTEL_EXPORTER_TYPE", "console"),
		OTelOTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	cfg.OTelExportInterval = time.Duration(getEnvInt("OTEL_EXPORT_INTERVAL_SECONDS", 30)) * time.Second

	cfg.RiotPlatformURL = strings.TrimRight(getEnv("RIOT_PLATFORM_URL", riotHost(cfg.RegionPlatform)), "/")
	cfg.RiotRoutingURL = strings.TrimRight(getEnv("RIOT_ROUTING_URL", riotHost(cfg.RegionRouting)), "/")

	switch cfg.CacheBackend {
	case CacheBackendS3, CacheBackendPostgres, CacheBackendNone:
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}

	return cfg, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	if c.RiotAPIKey == "" {
		return fmt.Errorf("RIOT_API_KEY environment variable is required")
	}
	if c.CacheBackend == CacheBackendPostgres && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required for the postgres cache backend")
	}
	return nil
}

// CacheEnabled reports whether a rotation cache store is configured.
func (c *Config) CacheEnabled() bool {
	switch c.CacheBackend {
	case CacheBackendS3:
		return c.S3Bucket != ""
	case CacheBackendPostgres:
		return c.DatabaseURL != ""
	default:
		return false
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func riotHost(region string) string {
	return fmt.Sprintf("https://%s.api.riotgames.com", region)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
