// Package extracting reads loosely typed supplier payloads decoded into
// map[string]interface{} values. Every accessor takes a fallback and never
// panics, since supplier responses routinely omit fields or switch a
// field's type between releases.
package extracting

import (
	"strconv"
	"strings"
)

func String(source map[string]interface{}, key string, fallback string) string {
	value, ok := source[key].(string)
	if !ok {
		return fallback
	}

	return value
}

// StringFromAny stringifies numeric values as well, for suppliers that
// return identifiers either quoted or bare.
func StringFromAny(source map[string]interface{}, key string, fallback string) string {
	switch value := source[key].(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fallback
	}
}

func Float(source map[string]interface{}, key string, fallback float64) float64 {
	switch value := source[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fallback
		}

		return parsed
	default:
		return fallback
	}
}

func FloatPtr(source map[string]interface{}, key string) *float64 {
	switch value := source[key].(type) {
	case float64:
		return &value
	case int:
		converted := float64(value)

		return &converted
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}

		return &parsed
	default:
		return nil
	}
}

func Int(source map[string]interface{}, key string, fallback int) int {
	switch value := source[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fallback
		}

		return parsed
	default:
		return fallback
	}
}

func Bool(source map[string]interface{}, key string, fallback bool) bool {
	value, ok := source[key].(bool)
	if !ok {
		return fallback
	}

	return value
}

func Map(source map[string]interface{}, key string) map[string]interface{} {
	value, ok := source[key].(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	return value
}

// HasMap reports whether the key holds an object, keeping "absent" apart
// from "present but empty".
func HasMap(source map[string]interface{}, key string) (map[string]interface{}, bool) {
	value, ok := source[key].(map[string]interface{})

	return value, ok
}

func Slice(source map[string]interface{}, key string) []interface{} {
	value, ok := source[key].([]interface{})
	if !ok {
		return []interface{}{}
	}

	return value
}

// Maps returns the elements of a list field that are objects, dropping
// anything else.
func Maps(source map[string]interface{}, key string) []map[string]interface{} {
	items := Slice(source, key)

	result := make([]map[string]interface{}, 0, len(items))

	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		result = append(result, entry)
	}

	return result
}

func Strings(source map[string]interface{}, key string) []string {
	items := Slice(source, key)

	result := make([]string, 0, len(items))

	for _, item := range items {
		entry, ok := item.(string)
		if !ok {
			continue
		}

		result = append(result, entry)
	}

	return result
}

// FirstMap unwraps the supplier habit of wrapping a single object in a
// one-element list. It accepts either shape and returns the object.
func FirstMap(source map[string]interface{}, key string) (map[string]interface{}, bool) {
	switch value := source[key].(type) {
	case map[string]interface{}:
		return value, true
	case []interface{}:
		if len(value) == 0 {
			return nil, false
		}

		entry, ok := value[0].(map[string]interface{})

		return entry, ok
	default:
		return nil, false
	}
}
