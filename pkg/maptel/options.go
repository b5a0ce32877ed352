package maptel

import (
	"log/slog"

	"github.com/randalmurphal/maptel/pkg/maptel/observability"
)

// Option configures a Registry.
type Option func(*Registry)

// WithObserver registers an observer for registry events.
// May be given more than once; observers are called in registration order.
// A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithLogger logs registry events to logger.
// Shorthand for WithObserver(NewLogObserver(logger)).
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	r := maptel.New(maptel.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.observers = append(r.observers, NewLogObserver(logger))
		}
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
// Default: disabled.
func WithMetrics(enabled bool) Option {
	return func(r *Registry) {
		if enabled {
			r.metrics = observability.NewMetricsRecorder()
		} else {
			r.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder uses m for metrics. A nil m disables metrics.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		r.metrics = m
	}
}

// WithTracing enables OpenTelemetry spans for ResolveContext using the
// global tracer provider. Default: disabled.
func WithTracing(enabled bool) Option {
	return func(r *Registry) {
		if enabled {
			r.spans = observability.NewSpanManager()
		} else {
			r.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager uses sm for tracing. A nil sm disables tracing.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(r *Registry) {
		if sm == nil {
			sm = observability.NoopSpanManager{}
		}
		r.spans = sm
	}
}

// WithID overrides the generated registry ID reported in events,
// logs, and metrics. An empty id keeps the generated one.
func WithID(id string) Option {
	return func(r *Registry) {
		if id != "" {
			r.id = id
		}
	}
}
