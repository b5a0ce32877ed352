package maptel

import (
	"context"

	"github.com/randalmurphal/maptel/pkg/maptel/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Resolution is the full record of one chain walk.
type Resolution struct {
	// Source is the number the walk started from.
	Source string
	// Result is the last number reached, or Source if Cycle is true.
	Result string
	// Path lists every number visited, in order, starting with Source.
	// On a cycle it stops before the repeated number.
	Path []string
	// Cycle is true when the walk reached a number it had already visited.
	Cycle bool
}

// Hops returns the number of mappings followed.
func (res Resolution) Hops() int {
	return len(res.Path) - 1
}

// Resolve follows mappings in the table under h, starting at source,
// until it reaches a number with no mapping, and returns that number.
//
// If the chain loops back to a number already visited, Resolve returns
// source unchanged. A number with no mapping at all resolves to itself.
// The table is never modified.
func (r *Registry) Resolve(h Handle, source string) (string, error) {
	return r.ResolveContext(context.Background(), h, source)
}

// ResolveContext is Resolve with a context for trace propagation.
// Resolution is bounded by the table size, so ctx is not checked for
// cancellation.
func (r *Registry) ResolveContext(ctx context.Context, h Handle, source string) (string, error) {
	res, err := r.resolve(ctx, "resolve", h, source)
	if err != nil {
		return "", err
	}
	return res.Result, nil
}

// Trace is Resolve returning the whole walk instead of only the result.
func (r *Registry) Trace(h Handle, source string) (Resolution, error) {
	return r.TraceContext(context.Background(), h, source)
}

// TraceContext is Trace with a context for trace propagation.
func (r *Registry) TraceContext(ctx context.Context, h Handle, source string) (Resolution, error) {
	return r.resolve(ctx, "trace", h, source)
}

// ResolveInto resolves source and copies the result into dst, truncated
// to len(dst). It returns the number of bytes written. A short dst is
// not an error; size it to MaxNumberLength to never truncate.
func (r *Registry) ResolveInto(h Handle, source string, dst []byte) (int, error) {
	res, err := r.resolve(context.Background(), "resolve", h, source)
	if err != nil {
		return 0, err
	}
	return copy(dst, res.Result), nil
}

func (r *Registry) resolve(ctx context.Context, op string, h Handle, source string) (res Resolution, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := r.spans.StartResolveSpan(ctx, r.id, uint64(h), source)
	defer func() { r.spans.EndSpanWithError(span, err) }()

	t, err := r.live(op, h)
	if err != nil {
		return Resolution{}, err
	}
	if err := r.number(op, h, source); err != nil {
		return Resolution{}, err
	}

	done := observability.TimedOperation()
	res = walk(t, source)
	r.metrics.RecordResolution(ctx, r.id, res.Hops(), res.Cycle, done())
	r.spans.RecordResolveResult(span, res.Result, res.Hops(), res.Cycle)

	if res.Cycle {
		r.spans.AddSpanEvent(ctx, "cycle_detected", attribute.Int("steps", res.Hops()))
		r.emit(Event{Kind: EventCycleDetected, Op: op, Handle: h, Source: source, Steps: res.Hops()})
	}
	r.emit(Event{Kind: EventResolved, Op: op, Handle: h, Source: source, Result: res.Result, Steps: res.Hops()})
	return res, nil
}

// walk follows t from source. Every step either stops at an unmapped
// number or adds a new number to visited, so a table with n entries is
// walked in at most n+1 lookups.
func walk(t table, source string) Resolution {
	res := Resolution{Source: source, Path: []string{source}}
	visited := map[string]struct{}{source: {}}

	current := source
	for {
		next, ok := t[current]
		if !ok {
			res.Result = current
			return res
		}
		if _, seen := visited[next]; seen {
			res.Cycle = true
			res.Result = source
			return res
		}
		visited[next] = struct{}{}
		res.Path = append(res.Path, next)
		current = next
	}
}
