package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordTableCreated does nothing.
func (NoopMetrics) RecordTableCreated(_ context.Context, _ string) {}

// RecordTableDestroyed does nothing.
func (NoopMetrics) RecordTableDestroyed(_ context.Context, _ string) {}

// RecordMutation does nothing.
func (NoopMetrics) RecordMutation(_ context.Context, _, _ string) {}

// RecordResolution does nothing.
func (NoopMetrics) RecordResolution(_ context.Context, _ string, _ int, _ bool, _ time.Duration) {}

// RecordError does nothing.
func (NoopMetrics) RecordError(_ context.Context, _, _, _ string) {}

// NoopSpanManager is a SpanManager that does nothing.
// Use when tracing is disabled to avoid overhead.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartResolveSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartResolveSpan(ctx context.Context, _ string, _ uint64, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// RecordResolveResult does nothing.
func (NoopSpanManager) RecordResolveResult(_ trace.Span, _ string, _ int, _ bool) {}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
