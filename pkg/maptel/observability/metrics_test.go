package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns a function to collect metrics.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumFor returns the int64 sum datapoint value carrying attribute key=value.
func sumFor(t *testing.T, m *metricdata.Metrics, key, value string) (int64, bool) {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")

	for _, dp := range sum.DataPoints {
		for _, attr := range dp.Attributes.ToSlice() {
			if string(attr.Key) == key && attr.Value.AsString() == value {
				return dp.Value, true
			}
		}
	}
	return 0, false
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordTableLifecycle(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordTableCreated(ctx, "reg-a")
	m.RecordTableCreated(ctx, "reg-a")
	m.RecordTableDestroyed(ctx, "reg-a")

	rm := collectMetrics(t, reader)

	created := findMetric(rm, "maptel.tables.created")
	require.NotNil(t, created)
	v, found := sumFor(t, created, "registry_id", "reg-a")
	require.True(t, found)
	assert.Equal(t, int64(2), v)

	destroyed := findMetric(rm, "maptel.tables.destroyed")
	require.NotNil(t, destroyed)
	v, found = sumFor(t, destroyed, "registry_id", "reg-a")
	require.True(t, found)
	assert.Equal(t, int64(1), v)

	live := findMetric(rm, "maptel.tables.live")
	require.NotNil(t, live)
	v, found = sumFor(t, live, "registry_id", "reg-a")
	require.True(t, found)
	assert.Equal(t, int64(1), v)
}

func TestRecordMutation(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordMutation(ctx, "reg-m", "insert")
	m.RecordMutation(ctx, "reg-m", "insert")
	m.RecordMutation(ctx, "reg-m", "erase")

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "maptel.mutations")
	require.NotNil(t, metric)

	v, found := sumFor(t, metric, "operation", "insert")
	require.True(t, found)
	assert.Equal(t, int64(2), v)

	v, found = sumFor(t, metric, "operation", "erase")
	require.True(t, found)
	assert.Equal(t, int64(1), v)
}

func TestRecordResolution(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("records resolutions and steps", func(t *testing.T) {
		m.RecordResolution(ctx, "reg-r", 3, false, time.Millisecond)

		rm := collectMetrics(t, reader)
		require.NotNil(t, findMetric(rm, "maptel.resolutions"))

		steps := findMetric(rm, "maptel.resolution.steps")
		require.NotNil(t, steps)
		hist, ok := steps.Data.(metricdata.Histogram[int64])
		require.True(t, ok, "Expected Histogram type")
		require.NotEmpty(t, hist.DataPoints)

		latency := findMetric(rm, "maptel.resolution.latency_ms")
		require.NotNil(t, latency)
		_, ok = latency.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
	})

	t.Run("counts cycles", func(t *testing.T) {
		m.RecordResolution(ctx, "reg-r", 2, true, time.Millisecond)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "maptel.resolution.cycles")
		require.NotNil(t, metric)

		v, found := sumFor(t, metric, "registry_id", "reg-r")
		require.True(t, found)
		assert.Equal(t, int64(1), v)
	})
}

func TestRecordError(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordError(context.Background(), "reg-e", "insert", "invalid_number")

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "maptel.errors")
	require.NotNil(t, metric)

	v, found := sumFor(t, metric, "kind", "invalid_number")
	require.True(t, found)
	assert.Equal(t, int64(1), v)
}
