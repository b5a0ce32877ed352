package registry

import "sort"

// Handle identifies one live slot in a Registry.
type Handle uint64

// Registry stores values under compactly allocated handles.
// Released handles are recycled before the handle space grows.
//
// Registry is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves.
type Registry[V any] struct {
	entries map[Handle]V
	// next is one past the high-water mark; zero means no handle has
	// been handed out (or every handle has been returned to the top).
	next Handle
	pool []Handle
}

// New creates a new empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[Handle]V),
	}
}

// Acquire stores value under a fresh handle and returns the handle.
//
// The most recently released handle is reused when one is pooled.
// Otherwise the handle one above the high-water mark is allocated and
// the mark advances.
func (r *Registry[V]) Acquire(value V) Handle {
	var h Handle
	if n := len(r.pool); n > 0 {
		h = r.pool[n-1]
		r.pool = r.pool[:n-1]
	} else {
		h = r.next
		r.next++
	}
	r.entries[h] = value
	return h
}

// Release removes the value stored under h and returns it.
// Returns false if h is not live; the registry is left unchanged.
//
// Releasing the high-water mark lowers the mark instead of pooling the
// handle.
func (r *Registry[V]) Release(h Handle) (V, bool) {
	v, ok := r.entries[h]
	if !ok {
		return v, false
	}
	delete(r.entries, h)

	if h+1 == r.next {
		r.next--
	} else {
		r.pool = append(r.pool, h)
	}
	return v, true
}

// Get returns the value for a handle and whether it is live.
func (r *Registry[V]) Get(h Handle) (V, bool) {
	v, ok := r.entries[h]
	return v, ok
}

// Has returns true if the handle is live.
func (r *Registry[V]) Has(h Handle) bool {
	_, ok := r.entries[h]
	return ok
}

// Handles returns all live handles in ascending order.
func (r *Registry[V]) Handles() []Handle {
	handles := make([]Handle, 0, len(r.entries))
	for h := range r.entries {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// Len returns the number of live handles.
func (r *Registry[V]) Len() int {
	return len(r.entries)
}

// Mark returns the current high-water mark. It is a diagnostic view of
// the allocator state and plays no part in allocation decisions.
// The second result is false when the handle space is empty.
func (r *Registry[V]) Mark() (Handle, bool) {
	if r.next == 0 {
		return 0, false
	}
	return r.next - 1, true
}

// Pooled returns the number of released handles waiting to be reused.
// Like Mark, it exists for diagnostics.
func (r *Registry[V]) Pooled() int {
	return len(r.pool)
}
