package maptel

import (
	"context"
	"time"

	"github.com/randalmurphal/maptel/pkg/maptel/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recorder is an Observer that keeps every event.
type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

// kinds returns the kinds of all recorded events, in order.
func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

// last returns the most recent event of kind k.
func (r *recorder) last(k EventKind) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == k {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// fakeMetrics counts calls per method.
type fakeMetrics struct {
	created     int
	destroyed   int
	mutations   map[string]int
	resolutions int
	cycles      int
	lastSteps   int
	errors      map[string]int
}

var _ observability.MetricsRecorder = (*fakeMetrics)(nil)

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		mutations: make(map[string]int),
		errors:    make(map[string]int),
	}
}

func (m *fakeMetrics) RecordTableCreated(_ context.Context, _ string)   { m.created++ }
func (m *fakeMetrics) RecordTableDestroyed(_ context.Context, _ string) { m.destroyed++ }
func (m *fakeMetrics) RecordMutation(_ context.Context, _, op string)   { m.mutations[op]++ }

func (m *fakeMetrics) RecordResolution(_ context.Context, _ string, steps int, cycle bool, _ time.Duration) {
	m.resolutions++
	m.lastSteps = steps
	if cycle {
		m.cycles++
	}
}

func (m *fakeMetrics) RecordError(_ context.Context, _, _, kind string) {
	m.errors[kind]++
}

// fakeSpans records span lifecycle calls.
type fakeSpans struct {
	started int
	ended   int
	lastErr error
	events  []string
	results []string
}

var _ observability.SpanManager = (*fakeSpans)(nil)

func (s *fakeSpans) StartResolveSpan(ctx context.Context, _ string, _ uint64, _ string) (context.Context, trace.Span) {
	s.started++
	return ctx, noop.Span{}
}

func (s *fakeSpans) RecordResolveResult(_ trace.Span, result string, _ int, _ bool) {
	s.results = append(s.results, result)
}

func (s *fakeSpans) EndSpanWithError(_ trace.Span, err error) {
	s.ended++
	s.lastErr = err
}

func (s *fakeSpans) AddSpanEvent(_ context.Context, name string, _ ...attribute.KeyValue) {
	s.events = append(s.events, name)
}

// newTestRegistry returns a registry with a fixed ID and an event recorder.
func newTestRegistry(opts ...Option) (*Registry, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithID("reg-test"), WithObserver(rec)}, opts...)
	return New(opts...), rec
}

// mustInsert inserts pairs of source, destination and panics on error.
func mustInsert(r *Registry, h Handle, pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := r.Insert(h, pairs[i], pairs[i+1]); err != nil {
			panic(err)
		}
	}
}
