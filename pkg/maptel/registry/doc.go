// Package registry provides a generic handle-keyed registry with compact
// handle recycling.
//
// Handles are small unsigned integers. The registry keeps a high-water
// mark and a pool of released handles below it, so a long series of
// Acquire/Release calls never grows the handle space beyond the peak
// number of simultaneously live entries.
//
// # Basic Usage
//
//	r := registry.New[string]()
//	a := r.Acquire("alpha") // 0
//	b := r.Acquire("beta")  // 1
//
//	value, ok := r.Get(a)
//	if ok {
//	    fmt.Println(value) // Output: alpha
//	}
//
// # Handle Reuse
//
// Releasing a handle below the mark puts it in the pool; the next
// Acquire takes the most recently released one:
//
//	r.Release(a)
//	c := r.Acquire("gamma") // 0 again
//
// Releasing the mark itself lowers the mark instead:
//
//	r.Release(b)
//	d := r.Acquire("delta") // 1 again, the pool stays empty
//
// A handle is never handed out twice while live.
//
// # Thread Safety
//
// Registry has no internal locking. It is meant for single-threaded use
// or for callers that serialize access externally.
package registry
