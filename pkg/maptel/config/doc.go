/*
Package config provides type-safe extraction of maptel settings from
map[string]any.

# Overview

config wraps a map[string]any decoded from YAML or JSON and provides typed
accessor methods that return default values for missing keys and type
mismatches, so callers avoid verbose type assertions and nil checks.

# Document Shape

A registry document looks like this:

	log_level: debug
	metrics: true
	tracing: false
	tables:
	  main:
	    "100": "200"
	    "200": "300"
	  fallback:
	    "555": "0"

Read it with the accessors:

	cfg, err := config.FromFile("tables.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	level := cfg.String("log_level", "info")
	tables := cfg.Section("tables")
	for _, name := range tables.Keys() {
	    entries := tables.StringMap(name, nil)
	    // ...
	}

# Numbers in YAML

Telephone numbers are strings. The YAML loader keeps the source text of
every mapping key and numeric scalar, so an unquoted 0048123 reads as
"0048123" and a long number keeps every digit. Forms such as 0x10, 0o17
or 1_000 also come back as written, which maptel then rejects as not a
number instead of silently converting them. JSON numbers are decoded
with json.Number and keep their text the same way.

# Sources

FromFile picks the format from the extension (.yaml, .yml, .json). A
path of "-" reads YAML from standard input. FromReader decodes from any
io.Reader in an explicit Format.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
