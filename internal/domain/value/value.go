// Where: warmup/internal/domain/value/value.go
// What: Strict coercion helpers for loosely typed warmup configuration.
// Why: Wrong-typed user values must read as absent, never as errors.
package value

import "math"

// AsMap returns the value as a string-keyed map, or nil when it is not one.
func AsMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// AsString reports the value only when it is a string.
// Unlike fmt.Sprint-style coercion, numbers and booleans do not qualify.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsInt reports the value only when it is an integral number. YAML decodes
// integers as int and JSON decodes them as float64; both count, but strings
// and fractional floats do not.
func AsInt(v any) (int, bool) {
	switch typed := v.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		if typed != math.Trunc(typed) {
			return 0, false
		}
		return int(typed), true
	}
	return 0, false
}

// AsBool reports the value only when it is a boolean.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsSlice reports the value only when it is a sequence.
func AsSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// AsStringSlice reports the value when it is a sequence of strings.
// A sequence containing any non-string element does not qualify.
func AsStringSlice(v any) ([]string, bool) {
	switch typed := v.(type) {
	case []string:
		return typed, true
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// AsStringMap reports the value when it is a mapping of strings to strings.
func AsStringMap(v any) (map[string]string, bool) {
	switch typed := v.(type) {
	case map[string]string:
		return typed, true
	case map[string]any:
		out := make(map[string]string, len(typed))
		for key, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[key] = s
		}
		return out, true
	}
	return nil, false
}
