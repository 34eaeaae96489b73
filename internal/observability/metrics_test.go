package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsProvider_DisabledIsNoop(t *testing.T) {
	mp := observability.NewMetricsProvider(&config.Config{OTelEnabled: false}, "test")
	require.NoError(t, mp.Initialize(context.Background()))

	assert.NotPanics(t, func() {
		mp.RecordRiotRequest("match.by-id", 200, time.Millisecond)
		mp.RecordCacheLookup(observability.CacheOutcomeHit)
		mp.RecordRefresh(true)
	})
	assert.NoError(t, mp.ForceFlush(context.Background()))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestMetricsProvider_NilIsNoop(t *testing.T) {
	var mp *observability.MetricsProvider

	assert.NotPanics(t, func() {
		mp.RecordCacheLookup(observability.CacheOutcomeMiss)
	})
	assert.NoError(t, mp.ForceFlush(context.Background()))
}

func TestMetricsProvider_UnknownExporter(t *testing.T) {
	mp := observability.NewMetricsProvider(&config.Config{
		OTelEnabled:      true,
		OTelExporterType: "carrier-pigeon",
	}, "test")

	err := mp.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exporter type")
}

func TestMetricsProvider_ConsoleExporter(t *testing.T) {
	mp := observability.NewMetricsProvider(&config.Config{
		OTelEnabled:        true,
		OTelExporterType:   "console",
		OTelExportInterval: time.Hour,
		Environment:        "test",
	}, "test")
	require.NoError(t, mp.Initialize(context.Background()))

	assert.NotPanics(t, func() {
		mp.RecordRiotRequest("platform.champion-rotations", 503, 20*time.Millisecond)
		mp.RecordCacheLookup(observability.CacheOutcomeStale)
		mp.RecordRefresh(false)
	})
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestMetricsProvider_EnabledInitializes(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{name: "development", environment: "development"},
		{name: "production", environment: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OTEL_RESOURCE_ATTRIBUTES", "deployment.region=br1")

			mp := observability.NewMetricsProvider(&config.Config{
				OTelEnabled:        true,
				OTelExporterType:   "console",
				OTelExportInterval: time.Hour,
				Environment:        tt.environment,
			}, "league-profile-gateway")

			err := mp.Initialize(context.Background())
			require.NoError(t, err, "enabling metrics must not fail resource creation")

			mp.RecordRefresh(true)
			assert.NoError(t, mp.ForceFlush(context.Background()))
			assert.NoError(t, mp.Shutdown(context.Background()))
		})
	}
}
