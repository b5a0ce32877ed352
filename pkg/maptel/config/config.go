package config

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Number is the source text of a numeric scalar, kept exactly as
// written in the document.
type Number string

// Config wraps a map[string]any for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// StringMap returns the value for key as a map of strings, or defaultVal
// if missing or not convertible.
//
// Accepts mappings decoded from YAML or JSON. Keys and values may be
// strings or numbers. Numbers read by the loaders come back as written,
// so 0123 stays "0123" and 0x10 stays "0x10"; Go integers are rendered
// in base 10. Any other element type makes the whole value fall back to
// defaultVal.
func (c Config) StringMap(key string, defaultVal map[string]string) map[string]string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	m, ok := toStringMap(v)
	if !ok {
		return defaultVal
	}
	return m
}

// Section returns the nested mapping under key as a Config.
// Returns an empty Config if key is missing or not a mapping.
func (c Config) Section(key string) Config {
	v, ok := c.data[key]
	if !ok {
		return New(nil)
	}
	switch val := v.(type) {
	case map[string]any:
		return New(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			ks, ok := scalarString(k)
			if !ok {
				return New(nil)
			}
			m[ks] = item
		}
		return New(m)
	}
	return New(nil)
}

// Keys returns all top-level keys in ascending order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Any returns the raw value for key, or defaultVal if missing.
func (c Config) Any(key string, defaultVal any) any {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	return v
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}

func toStringMap(v any) (map[string]string, bool) {
	switch val := v.(type) {
	case map[string]string:
		return val, true
	case map[string]any:
		out := make(map[string]string, len(val))
		for k, item := range val {
			s, ok := scalarString(item)
			if !ok {
				return nil, false
			}
			out[k] = s
		}
		return out, true
	case map[any]any:
		out := make(map[string]string, len(val))
		for k, item := range val {
			ks, ok := scalarString(k)
			if !ok {
				return nil, false
			}
			s, ok := scalarString(item)
			if !ok {
				return nil, false
			}
			out[ks] = s
		}
		return out, true
	}
	return nil, false
}

// scalarString converts a decoded scalar to its string form. Numbers
// from the loaders keep their source text; Go floats convert only when
// they have no fractional part.
func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case Number:
		return string(val), true
	case json.Number:
		return string(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float64:
		if val >= 0 && val < math.MaxInt64 && val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10), true
		}
	}
	return "", false
}
