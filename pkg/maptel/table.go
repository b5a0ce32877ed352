package maptel

import (
	"context"
	"maps"
)

// Insert maps source to destination in the table under h, replacing any
// existing mapping for source. Repeating an identical Insert is a no-op.
//
// The handle is checked first, then source, then destination. Nothing is
// written unless all three are valid.
func (r *Registry) Insert(h Handle, source, destination string) error {
	const op = "insert"

	t, err := r.live(op, h)
	if err != nil {
		return err
	}
	if err := r.number(op, h, source); err != nil {
		return err
	}
	if err := r.number(op, h, destination); err != nil {
		return err
	}

	t[source] = destination

	r.metrics.RecordMutation(context.Background(), r.id, op)
	r.emit(Event{Kind: EventInserted, Op: op, Handle: h, Source: source, Destination: destination})
	return nil
}

// Erase removes the mapping for source from the table under h.
// Erasing a source with no mapping succeeds and only emits
// EventEraseMissing.
func (r *Registry) Erase(h Handle, source string) error {
	const op = "erase"

	t, err := r.live(op, h)
	if err != nil {
		return err
	}
	if err := r.number(op, h, source); err != nil {
		return err
	}

	if _, ok := t[source]; !ok {
		r.emit(Event{Kind: EventEraseMissing, Op: op, Handle: h, Source: source})
		return nil
	}
	delete(t, source)

	r.metrics.RecordMutation(context.Background(), r.id, op)
	r.emit(Event{Kind: EventErased, Op: op, Handle: h, Source: source})
	return nil
}

// Lookup returns the destination source maps to directly, without
// following the chain. The bool is false when source has no mapping.
func (r *Registry) Lookup(h Handle, source string) (string, bool, error) {
	const op = "lookup"

	t, err := r.live(op, h)
	if err != nil {
		return "", false, err
	}
	if err := r.number(op, h, source); err != nil {
		return "", false, err
	}

	dst, ok := t[source]
	return dst, ok, nil
}

// Entries returns a copy of every mapping in the table under h.
// Changing the returned map does not affect the table.
func (r *Registry) Entries(h Handle) (map[string]string, error) {
	t, err := r.live("entries", h)
	if err != nil {
		return nil, err
	}
	return maps.Clone(map[string]string(t)), nil
}

// Size returns the number of mappings in the table under h.
func (r *Registry) Size(h Handle) (int, error) {
	t, err := r.live("size", h)
	if err != nil {
		return 0, err
	}
	return len(t), nil
}
