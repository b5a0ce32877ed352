package maptel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/randalmurphal/maptel/pkg/maptel/config"
)

// OptionsFromConfig maps the "metrics" and "tracing" keys of cfg to
// registry options. Both default to false.
func OptionsFromConfig(cfg config.Config) []Option {
	return []Option{
		WithMetrics(cfg.Bool("metrics", false)),
		WithTracing(cfg.Bool("tracing", false)),
	}
}

// Seed creates one table in r for every entry under the "tables" key of
// cfg and inserts its mappings. It returns the handle of each table by
// name.
//
// Tables are created in name order and mappings inserted in source
// order. If any table is malformed or holds an invalid number, every
// table created by this call is destroyed and the error is returned,
// joined with any error from the rollback itself.
func Seed(r *Registry, cfg config.Config) (map[string]Handle, error) {
	tables := cfg.Section("tables")
	handles := make(map[string]Handle, len(tables.Keys()))

	rollback := func(cause error) error {
		errs := []error{cause}
		for _, h := range handles {
			if err := r.Destroy(h); err != nil {
				errs = append(errs, fmt.Errorf("rollback: %w", err))
			}
		}
		return errors.Join(errs...)
	}

	for _, name := range tables.Keys() {
		entries := tables.StringMap(name, nil)
		if entries == nil {
			return nil, rollback(fmt.Errorf("seed table %q: entries must map numbers to numbers", name))
		}

		h := r.Create()
		handles[name] = h

		sources := make([]string, 0, len(entries))
		for src := range entries {
			sources = append(sources, src)
		}
		sort.Strings(sources)

		for _, src := range sources {
			if err := r.Insert(h, src, entries[src]); err != nil {
				return nil, rollback(fmt.Errorf("seed table %q: %w", name, err))
			}
		}
	}

	return handles, nil
}
