package maptel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/randalmurphal/maptel/pkg/maptel/observability"
	"github.com/randalmurphal/maptel/pkg/maptel/registry"
)

// Handle identifies one live translation table.
// Handles are only meaningful to the Registry that issued them.
type Handle = registry.Handle

// table maps a source number to its destination number.
type table map[string]string

// Registry owns a set of translation tables, each under its own Handle.
//
// A Registry is an explicit object: construct one with New and pass it
// to whatever needs it. Independent registries never share tables or
// handles.
//
// Registry is NOT safe for concurrent use. Callers must serialize access.
type Registry struct {
	id        string
	tables    *registry.Registry[table]
	observers []Observer
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
}

// New creates an empty Registry.
//
// Example:
//
//	r := maptel.New(maptel.WithLogger(logger))
//	h := r.Create()
//	_ = r.Insert(h, "100", "200")
//	got, _ := r.Resolve(h, "100") // "200"
func New(opts ...Option) *Registry {
	r := &Registry{
		id:      fmt.Sprintf("reg-%s", uuid.New().String()[:8]),
		tables:  registry.New[table](),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the registry instance identifier used in events and telemetry.
func (r *Registry) ID() string {
	return r.id
}

// Create allocates a new empty table and returns its handle.
//
// The most recently destroyed handle is reused when one is available;
// otherwise the handle space grows by one.
func (r *Registry) Create() Handle {
	h := r.tables.Acquire(make(table))

	r.metrics.RecordTableCreated(context.Background(), r.id)
	r.emit(Event{Kind: EventTableCreated, Op: "create", Handle: h})
	return h
}

// Destroy discards the table under h and releases the handle for reuse.
// Returns ErrInvalidHandle (as *HandleError) if h is not live.
func (r *Registry) Destroy(h Handle) error {
	t, ok := r.tables.Release(h)
	if !ok {
		return r.reject("destroy", h, &HandleError{Op: "destroy", Handle: h})
	}

	r.metrics.RecordTableDestroyed(context.Background(), r.id)
	r.emit(Event{Kind: EventTableDestroyed, Op: "destroy", Handle: h, Entries: len(t)})
	return nil
}

// IsLive reports whether h currently identifies a table.
func (r *Registry) IsLive(h Handle) bool {
	return r.tables.Has(h)
}

// Len returns the number of live tables.
func (r *Registry) Len() int {
	return r.tables.Len()
}

// Handles returns all live handles in ascending order.
func (r *Registry) Handles() []Handle {
	return r.tables.Handles()
}

// live returns the table under h, or a *HandleError for op.
func (r *Registry) live(op string, h Handle) (table, error) {
	t, ok := r.tables.Get(h)
	if !ok {
		return nil, r.reject(op, h, &HandleError{Op: op, Handle: h})
	}
	return t, nil
}

// number validates s for op, reporting rejection the same way as live.
func (r *Registry) number(op string, h Handle, s string) error {
	if err := checkNumber(op, s); err != nil {
		return r.reject(op, h, err)
	}
	return nil
}

// reject reports a validation failure and returns err unchanged.
func (r *Registry) reject(op string, h Handle, err error) error {
	r.metrics.RecordError(context.Background(), r.id, op, errorKind(err))
	r.emit(Event{Kind: EventRejected, Op: op, Handle: h, Err: err})
	return err
}

func (r *Registry) emit(e Event) {
	e.RegistryID = r.id
	for _, o := range r.observers {
		o.Observe(e)
	}
}
