package forge

import (
	"strconv"
	"time"
)

// RawMetadata is the wire-level JSON document returned by the forge API,
// kept untyped. Accessors default gracefully when a field is absent or has
// an unexpected shape; they never fail.
type RawMetadata map[string]any

// String returns the string value for key, or "" when absent
func (m RawMetadata) String(key string) string {
	if value, ok := m[key].(string); ok {
		return value
	}
	return ""
}

// Int returns the integer value for key, or 0 when absent.
// JSON numbers decode as float64, so both shapes are accepted.
func (m RawMetadata) Int(key string) int {
	switch value := m[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return 0
}

// Bool returns the boolean value for key, or false when absent
func (m RawMetadata) Bool(key string) bool {
	if value, ok := m[key].(bool); ok {
		return value
	}
	return false
}

// Map returns the nested object for key, or an empty document when absent
func (m RawMetadata) Map(key string) RawMetadata {
	if value, ok := m[key].(map[string]any); ok {
		return RawMetadata(value)
	}
	return RawMetadata{}
}

// List returns the nested object array for key, or nil when absent
func (m RawMetadata) List(key string) []RawMetadata {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	items := make([]RawMetadata, 0, len(raw))
	for _, entry := range raw {
		if obj, ok := entry.(map[string]any); ok {
			items = append(items, RawMetadata(obj))
		}
	}
	return items
}

// Time parses the timestamp value for key. The second return reports
// whether a usable timestamp was present.
func (m RawMetadata) Time(key string) (time.Time, bool) {
	return ParseTimestamp(m.String(key))
}

// timestampLayouts are tried in order by ParseTimestamp. RFC3339 covers
// the literal "Z" suffix the forge emits.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a relaxed ISO-8601 timestamp string
func ParseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
