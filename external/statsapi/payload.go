package statsapi

import (
	"math"
	"strconv"
	"strings"
)

func lookupMapValue(src map[string]any, keys ...string) any {
	if src == nil {
		return nil
	}
	for _, key := range keys {
		if value, ok := src[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func getString(src map[string]any, keys ...string) string {
	switch typed := lookupMapValue(src, keys...).(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == math.Trunc(typed) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func getInt(src map[string]any, keys ...string) int {
	return int(asFloat64(lookupMapValue(src, keys...)))
}

func getIntPtr(src map[string]any, keys ...string) *int {
	value := lookupMapValue(src, keys...)
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	out := int(asFloat64(value))
	return &out
}

func getFloatPtr(src map[string]any, keys ...string) *float64 {
	value := lookupMapValue(src, keys...)
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		return &parsed
	}
	out := asFloat64(value)
	if math.IsNaN(out) {
		return nil
	}
	return &out
}

// getBool accepts booleans and the 0/1 flags the game log tables use.
func getBool(src map[string]any, keys ...string) bool {
	switch typed := lookupMapValue(src, keys...).(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		return asFloat64(typed) != 0
	}
}

func asFloat64(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
