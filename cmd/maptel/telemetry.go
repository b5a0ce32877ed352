package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// telemetry holds in-process OpenTelemetry providers whose data is
// printed when the command finishes.
type telemetry struct {
	reader  *sdkmetric.ManualReader
	meters  *sdkmetric.MeterProvider
	spans   *tracetest.InMemoryExporter
	tracers *sdktrace.TracerProvider
}

// setupTelemetry installs global providers for whichever signals are
// enabled. Disabled signals keep the global no-op providers.
func setupTelemetry(metrics, tracing bool) *telemetry {
	t := &telemetry{}
	if metrics {
		t.reader = sdkmetric.NewManualReader()
		t.meters = sdkmetric.NewMeterProvider(sdkmetric.WithReader(t.reader))
		otel.SetMeterProvider(t.meters)
	}
	if tracing {
		t.spans = tracetest.NewInMemoryExporter()
		t.tracers = sdktrace.NewTracerProvider(sdktrace.WithSyncer(t.spans))
		otel.SetTracerProvider(t.tracers)
	}
	return t
}

// flush writes collected spans and metrics to w and shuts the providers down.
func (t *telemetry) flush(ctx context.Context, w io.Writer) error {
	if t == nil {
		return nil
	}

	var errs []error

	if t.spans != nil {
		writeSpans(w, t.spans.GetSpans())
		errs = append(errs, t.tracers.Shutdown(ctx))
	}

	if t.reader != nil {
		var rm metricdata.ResourceMetrics
		if err := t.reader.Collect(ctx, &rm); err != nil {
			errs = append(errs, fmt.Errorf("collect metrics: %w", err))
		} else {
			writeMetrics(w, rm)
		}
		errs = append(errs, t.meters.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

func writeSpans(w io.Writer, spans tracetest.SpanStubs) {
	for _, s := range spans {
		events := make([]string, len(s.Events))
		for i, e := range s.Events {
			events[i] = e.Name
		}
		fmt.Fprintf(w, "span %s duration=%s status=%s", s.Name, s.EndTime.Sub(s.StartTime), s.Status.Code)
		if len(events) > 0 {
			fmt.Fprintf(w, " events=%s", strings.Join(events, ","))
		}
		fmt.Fprintln(w)
	}
}

func writeMetrics(w io.Writer, rm metricdata.ResourceMetrics) {
	enc := attribute.DefaultEncoder()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "metric %s{%s} %d\n", m.Name, dp.Attributes.Encoded(enc), dp.Value)
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "metric %s{%s} count=%d sum=%d\n", m.Name, dp.Attributes.Encoded(enc), dp.Count, dp.Sum)
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					fmt.Fprintf(w, "metric %s{%s} count=%d sum=%.3f\n", m.Name, dp.Attributes.Encoded(enc), dp.Count, dp.Sum)
				}
			}
		}
	}
}
