package payload

import (
	"encoding/json"
	"strings"
)

// Documents are decoded into the generic encoding/json tree (with UseNumber),
// so every provider quirk is handled by the small accessors below.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// path walks nested objects, returning nil when any hop is missing.
func path(v any, keys ...string) any {
	for _, k := range keys {
		m, ok := asMap(v)
		if !ok {
			return nil
		}
		v = m[k]
	}
	return v
}

// first returns the first non-nil value among the given keys of v.
func first(v any, keys ...string) any {
	m, ok := asMap(v)
	if !ok {
		return nil
	}

	for _, k := range keys {
		if val, ok := m[k]; ok && val != nil {
			return val
		}
	}
	return nil
}

// text renders scalars as strings. Objects, lists, booleans and null are empty.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// address accepts either a plain string or an object carrying the address
// under "address" (some providers nest accounts as {"address": "0x.."}).
func address(v any) string {
	if s := text(v); s != "" {
		return s
	}
	return text(first(v, "address", "id"))
}

// texts converts a list of scalars to strings, skipping anything else.
func texts(v any) []string {
	l, ok := asList(v)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(l))
	for _, item := range l {
		if s := text(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// hasAny reports whether the object v carries at least one of the keys.
func hasAny(v any, keys ...string) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}

	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
