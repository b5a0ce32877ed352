package maptel

import (
	"log/slog"

	"github.com/randalmurphal/maptel/pkg/maptel/observability"
)

// EventKind identifies what happened in a registry.
type EventKind int

const (
	// EventTableCreated is emitted by Create.
	EventTableCreated EventKind = iota
	// EventTableDestroyed is emitted by Destroy.
	EventTableDestroyed
	// EventInserted is emitted by Insert.
	EventInserted
	// EventErased is emitted by Erase when the key was present.
	EventErased
	// EventEraseMissing is emitted by Erase when the key was absent.
	// It is not an error.
	EventEraseMissing
	// EventResolved is emitted after every successful resolution.
	EventResolved
	// EventCycleDetected is emitted before EventResolved when the walk
	// ran into a cycle and returned the source unchanged.
	EventCycleDetected
	// EventRejected is emitted when validation rejects an operation.
	EventRejected
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventTableCreated:
		return "table_created"
	case EventTableDestroyed:
		return "table_destroyed"
	case EventInserted:
		return "inserted"
	case EventErased:
		return "erased"
	case EventEraseMissing:
		return "erase_missing"
	case EventResolved:
		return "resolved"
	case EventCycleDetected:
		return "cycle_detected"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Event describes one significant registry occurrence.
// Fields that do not apply to a kind are left zero.
type Event struct {
	Kind       EventKind
	RegistryID string
	// Op is the public operation that produced the event.
	Op          string
	Handle      Handle
	Source      string
	Destination string
	Result      string
	// Steps is the number of hops a resolution took.
	Steps int
	// Entries is the table size a destroyed table held.
	Entries int
	// Err is set for EventRejected.
	Err error
}

// Observer receives registry events. Observe is called synchronously
// from the operation that produced the event.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// logObserver writes events to a slog.Logger.
type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an Observer that logs every event through the
// observability log helpers. Routine events log at DEBUG, cycles at
// INFO, rejected operations at WARN.
func NewLogObserver(logger *slog.Logger) Observer {
	return &logObserver{logger: logger}
}

func (o *logObserver) Observe(e Event) {
	h := uint64(e.Handle)
	switch e.Kind {
	case EventTableCreated:
		observability.LogTableCreated(o.logger, e.RegistryID, h)
	case EventTableDestroyed:
		observability.LogTableDestroyed(o.logger, e.RegistryID, h, e.Entries)
	case EventInserted:
		observability.LogInsert(o.logger, h, e.Source, e.Destination)
	case EventErased:
		observability.LogErase(o.logger, h, e.Source)
	case EventEraseMissing:
		observability.LogEraseMissing(o.logger, h, e.Source)
	case EventResolved:
		observability.LogResolve(o.logger, h, e.Source, e.Result, e.Steps)
	case EventCycleDetected:
		observability.LogCycle(o.logger, h, e.Source, e.Steps)
	case EventRejected:
		observability.LogOperationError(o.logger, e.Op, h, e.Err)
	}
}
