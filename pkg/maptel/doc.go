/*
Package maptel manages in-memory telephone number translation tables.

# Overview

A Registry holds any number of independent translation tables. Each
table maps source telephone numbers to destination numbers and is
addressed by a Handle. Resolving a number follows the mappings hop by
hop until it reaches a number with no further mapping:

	r := maptel.New()
	h := r.Create()

	_ = r.Insert(h, "100", "200")
	_ = r.Insert(h, "200", "300")

	got, err := r.Resolve(h, "100") // "300"

A telephone number is 1 to 22 ASCII decimal digits. Anything else is
rejected with ErrInvalidNumber.

# Cycles

Tables may contain cycles. Resolution always terminates: when the walk
reaches a number it has already visited, it stops and returns the
source number unchanged.

	_ = r.Insert(h, "1", "2")
	_ = r.Insert(h, "2", "1")
	got, _ := r.Resolve(h, "1") // "1"

Use Trace to see the full walk and whether it hit a cycle:

	res, _ := r.Trace(h, "1")
	fmt.Println(res.Path, res.Cycle) // [1 2] true

# Handles

Create returns the most recently destroyed handle if one is available,
and otherwise the next handle above the highest one in use. A handle is
never returned by Create while it is still live. Using a handle that is
not live fails with ErrInvalidHandle:

	h := r.Create()
	_ = r.Destroy(h)
	err := r.Insert(h, "1", "2")
	errors.Is(err, maptel.ErrInvalidHandle) // true

# Errors

Every operation validates its handle and numbers before changing
anything. Errors are *HandleError or *NumberError and wrap the sentinels:

	var numErr *maptel.NumberError
	if errors.As(err, &numErr) {
	    log.Printf("bad number %q: %s", numErr.Number, numErr.Reason)
	}

Erasing a source that has no mapping, and resolving into a cycle, are
not errors.

# Observability

Registries report events (table created, cycle detected, and so on) to
any number of Observers. Logging, metrics, and tracing are opt-in:

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	r := maptel.New(
	    maptel.WithLogger(logger),
	    maptel.WithMetrics(true),
	    maptel.WithTracing(true),
	)

OpenTelemetry metrics: maptel.tables.created, maptel.resolutions,
maptel.resolution.cycles, etc. OpenTelemetry tracing: one maptel.resolve
span per ResolveContext call.

# Configuration

Seed builds tables from a YAML or JSON document loaded with the config
subpackage:

	cfg, err := config.FromFile("tables.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	r := maptel.New(maptel.OptionsFromConfig(cfg)...)
	handles, err := maptel.Seed(r, cfg)

# Thread Safety

Registry is NOT safe for concurrent use. Use one Registry per goroutine
or serialize access externally.

# Subpackages

  - registry: generic handle-keyed storage with handle recycling
  - observability: logging, metrics, and tracing helpers
  - config: typed access to YAML/JSON configuration
*/
package maptel
