package model

import "strings"

// Settings holds a widget's configuration as supplied by the host render
// pipeline. Values may be strings, nested maps, or absent; lookups tolerate
// missing keys and unexpected value shapes by returning zero values.
type Settings map[string]any

// String returns the string stored under key, or "" when the key is absent
// or holds a non-string value.
func (s Settings) String(key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// Map returns the nested settings stored under key. Both Settings and plain
// map[string]any values are accepted; anything else yields nil.
func (s Settings) Map(key string) Settings {
	if s == nil {
		return nil
	}
	switch v := s[key].(type) {
	case Settings:
		return v
	case map[string]any:
		return Settings(v)
	}
	return nil
}

// HasValue reports whether key is present with a non-empty value. Strings
// count as empty when blank after trimming; maps and slices count as empty
// at length zero. Any other non-nil value counts as present.
func (s Settings) HasValue(key string) bool {
	if s == nil {
		return false
	}
	v, ok := s[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) != ""
	case Settings:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	}
	return true
}
