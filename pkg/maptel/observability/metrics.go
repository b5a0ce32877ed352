package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records maptel metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordTableCreated records allocation of a table.
	RecordTableCreated(ctx context.Context, registryID string)

	// RecordTableDestroyed records release of a table.
	RecordTableDestroyed(ctx context.Context, registryID string)

	// RecordMutation records an insert or erase ("insert", "erase").
	RecordMutation(ctx context.Context, registryID, op string)

	// RecordResolution records a completed resolution.
	RecordResolution(ctx context.Context, registryID string, steps int, cycle bool, duration time.Duration)

	// RecordError records an operation rejected by validation.
	// kind is a short error class such as "invalid_handle".
	RecordError(ctx context.Context, registryID, op, kind string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	tablesCreated   metric.Int64Counter
	tablesDestroyed metric.Int64Counter
	tablesLive      metric.Int64UpDownCounter
	mutations       metric.Int64Counter
	resolutions     metric.Int64Counter
	resolveSteps    metric.Int64Histogram
	resolveLatency  metric.Float64Histogram
	cycles          metric.Int64Counter
	errors          metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("maptel")

	tablesCreated, err := meter.Int64Counter("maptel.tables.created",
		metric.WithDescription("Number of tables created"),
	)
	if err != nil {
		return nil, err
	}

	tablesDestroyed, err := meter.Int64Counter("maptel.tables.destroyed",
		metric.WithDescription("Number of tables destroyed"),
	)
	if err != nil {
		return nil, err
	}

	tablesLive, err := meter.Int64UpDownCounter("maptel.tables.live",
		metric.WithDescription("Number of live tables"),
	)
	if err != nil {
		return nil, err
	}

	mutations, err := meter.Int64Counter("maptel.mutations",
		metric.WithDescription("Number of table inserts and erases"),
	)
	if err != nil {
		return nil, err
	}

	resolutions, err := meter.Int64Counter("maptel.resolutions",
		metric.WithDescription("Number of resolutions"),
	)
	if err != nil {
		return nil, err
	}

	resolveSteps, err := meter.Int64Histogram("maptel.resolution.steps",
		metric.WithDescription("Lookups performed per resolution"),
	)
	if err != nil {
		return nil, err
	}

	resolveLatency, err := meter.Float64Histogram("maptel.resolution.latency_ms",
		metric.WithDescription("Resolution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cycles, err := meter.Int64Counter("maptel.resolution.cycles",
		metric.WithDescription("Number of resolutions that hit a cycle"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("maptel.errors",
		metric.WithDescription("Number of rejected operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		tablesCreated:   tablesCreated,
		tablesDestroyed: tablesDestroyed,
		tablesLive:      tablesLive,
		mutations:       mutations,
		resolutions:     resolutions,
		resolveSteps:    resolveSteps,
		resolveLatency:  resolveLatency,
		cycles:          cycles,
		errors:          errs,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordTableCreated records a table allocation.
func (m *otelMetrics) RecordTableCreated(ctx context.Context, registryID string) {
	attrs := metric.WithAttributes(attribute.String("registry_id", registryID))
	m.tablesCreated.Add(ctx, 1, attrs)
	m.tablesLive.Add(ctx, 1, attrs)
}

// RecordTableDestroyed records a table release.
func (m *otelMetrics) RecordTableDestroyed(ctx context.Context, registryID string) {
	attrs := metric.WithAttributes(attribute.String("registry_id", registryID))
	m.tablesDestroyed.Add(ctx, 1, attrs)
	m.tablesLive.Add(ctx, -1, attrs)
}

// RecordMutation records an insert or erase.
func (m *otelMetrics) RecordMutation(ctx context.Context, registryID, op string) {
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("registry_id", registryID),
		attribute.String("operation", op),
	))
}

// RecordResolution records a resolution.
func (m *otelMetrics) RecordResolution(ctx context.Context, registryID string, steps int, cycle bool, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("registry_id", registryID),
		attribute.Bool("cycle", cycle),
	)
	m.resolutions.Add(ctx, 1, attrs)
	m.resolveSteps.Record(ctx, int64(steps), attrs)
	m.resolveLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if cycle {
		m.cycles.Add(ctx, 1, metric.WithAttributes(attribute.String("registry_id", registryID)))
	}
}

// RecordError records a rejected operation.
func (m *otelMetrics) RecordError(ctx context.Context, registryID, op, kind string) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("registry_id", registryID),
		attribute.String("operation", op),
		attribute.String("kind", kind),
	))
}
