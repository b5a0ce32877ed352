package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the maptel tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("maptel")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartResolveSpan starts a span for one resolution.
	// Returns the context with span and the span itself.
	StartResolveSpan(ctx context.Context, registryID string, handle uint64, source string) (context.Context, trace.Span)

	// RecordResolveResult sets the outcome attributes on a resolve span.
	RecordResolveResult(span trace.Span, result string, steps int, cycle bool)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartResolveSpan starts a span for one resolution.
func (m *otelSpanManager) StartResolveSpan(ctx context.Context, registryID string, handle uint64, source string) (context.Context, trace.Span) {
	return StartResolveSpan(ctx, registryID, handle, source)
}

func (m *otelSpanManager) RecordResolveResult(span trace.Span, result string, steps int, cycle bool) {
	RecordResolveResult(span, result, steps, cycle)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// StartResolveSpan starts a span for one resolution.
// Uses the global OTel tracer.
func StartResolveSpan(ctx context.Context, registryID string, handle uint64, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "maptel.resolve",
		trace.WithAttributes(
			attribute.String("registry.id", registryID),
			attribute.Int64("table.handle", int64(handle)),
			attribute.String("number.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// RecordResolveResult sets number.result, resolution.steps, and
// resolution.cycle on span.
func RecordResolveResult(span trace.Span, result string, steps int, cycle bool) {
	if span == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("number.result", result),
		attribute.Int("resolution.steps", steps),
		attribute.Bool("resolution.cycle", cycle),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
