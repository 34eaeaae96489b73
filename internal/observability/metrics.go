package observability

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dom/league-profile-gateway/internal/config"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// MetricsProvider owns the OpenTelemetry meter and the instruments this
// service records. A provider that was never initialized, or initialized with
// metrics disabled, drops every observation.
type MetricsProvider struct {
	config        *config.Config
	serviceName   string
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	enabled       bool
	mu            sync.RWMutex

	riotRequestsCounter metric.Int64Counter
	riotRequestDuration metric.Float64Histogram
	cacheLookupsCounter metric.Int64Counter
	refreshRunsCounter  metric.Int64Counter
}

func NewMetricsProvider(cfg *config.Config, serviceName string) *MetricsProvider {
	return &MetricsProvider{
		config:      cfg,
		serviceName: serviceName,
	}
}

// Initialize sets up the exporter selected by OTEL_EXPORTER_TYPE.
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Debug("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	// Schemaless: a semconv schema URL other than the SDK's fails to merge.
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(mp.serviceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}

	case "none":
		log.Info("metrics export disabled (exporter type 'none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(mp.config.OTelExportInterval)),
		),
	)
	otel.SetMeterProvider(mp.meterProvider)
	mp.meter = mp.meterProvider.Meter(mp.serviceName)

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	mp.enabled = true
	log.WithFields(log.Fields{
		"exporter": mp.config.OTelExporterType,
		"service":  mp.serviceName,
	}).Info("metrics provider initialized")
	return nil
}

func (mp *MetricsProvider) createInstruments() error {
	var err error

	mp.riotRequestsCounter, err = mp.meter.Int64Counter(
		RiotRequestsTotal,
		metric.WithDescription("Total number of Riot API requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create riot requests counter: %w", err)
	}

	mp.riotRequestDuration, err = mp.meter.Float64Histogram(
		RiotRequestDuration,
		metric.WithDescription("Duration of Riot API requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create riot request duration histogram: %w", err)
	}

	mp.cacheLookupsCounter, err = mp.meter.Int64Counter(
		RotationCacheLookupTotal,
		metric.WithDescription("Rotation cache lookups by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create cache lookups counter: %w", err)
	}

	mp.refreshRunsCounter, err = mp.meter.Int64Counter(
		RotationRefreshTotal,
		metric.WithDescription("Rotation refresh job runs by result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh runs counter: %w", err)
	}

	return nil
}

// Shutdown flushes pending metrics.
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// ForceFlush exports everything recorded so far. It is a no-op when metrics
// are disabled.
func (mp *MetricsProvider) ForceFlush(ctx context.Context) error {
	if !mp.isEnabled() {
		return nil
	}

	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.meterProvider.ForceFlush(ctx)
}

// RecordRiotRequest counts one upstream call. status is 0 for transport failures.
func (mp *MetricsProvider) RecordRiotRequest(endpoint string, status int, duration time.Duration) {
	if !mp.isEnabled() {
		return
	}

	attrs := metric.WithAttributes(attribute.String(LabelEndpoint, endpoint))
	mp.riotRequestsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEndpoint, endpoint),
			attribute.String(LabelStatus, strconv.Itoa(status)),
		),
	)
	mp.riotRequestDuration.Record(context.Background(), duration.Seconds(), attrs)
}

// RecordCacheLookup counts one rotation cache read by outcome.
func (mp *MetricsProvider) RecordCacheLookup(outcome string) {
	if !mp.isEnabled() {
		return
	}

	mp.cacheLookupsCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelOutcome, outcome)),
	)
}

// RecordRefresh counts one refresh job run.
func (mp *MetricsProvider) RecordRefresh(success bool) {
	if !mp.isEnabled() {
		return
	}

	result := "success"
	if !success {
		result = "failure"
	}
	mp.refreshRunsCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelResult, result)),
	)
}

func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.enabled
}
