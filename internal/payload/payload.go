// Package payload extracts optional typed fields from generic invocation payloads.
// Missing and wrong-typed fields are reported, never raised.
package payload

import (
	"encoding/json"
	"math"
)

// Payload is an arbitrary JSON object decoded into Go values
type Payload map[string]interface{}

// String returns the field as a string when present and string-typed
func String(p Payload, key string) (string, bool) {
	value, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// StringOr returns the string field or def
func StringOr(p Payload, key, def string) string {
	if s, ok := String(p, key); ok {
		return s
	}
	return def
}

// Int returns the field as an integer when present and a whole number
func Int(p Payload, key string) (int64, bool) {
	switch v := p[key].(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// IntOr returns the integer field or def
func IntOr(p Payload, key string, def int64) int64 {
	if n, ok := Int(p, key); ok {
		return n
	}
	return def
}

// Optional resolves an optional string pointer against a default
func Optional(value *string, def string) string {
	if value == nil {
		return def
	}
	return *value
}
