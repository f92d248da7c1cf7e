package records

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// fieldParser is a total conversion: defined for every cell type (string,
// number, bool, time, nil, absent). Malformed values degrade to the field's
// documented default, they never raise.
type fieldParser func(v any, cs callState) any

var fieldParsers = map[string]fieldParser{
	"id":           parseID,
	"target_age":   parseTargetAge,
	"completed":    parseCompleted,
	"completed_at": parseCompletedAt,
	"image_url":    parseImageURL,
	"category":     parseText,
	"title":        parseText,
	"note":         parseText,
}

// id: integer or null.
func parseID(v any, _ callState) any {
	if n, ok := toInt(v); ok {
		return n
	}
	return nil
}

// target_age: always a multiple of 10, never below the current decade
// bucket, never above 100. Anything unusable falls back to the bucket.
func parseTargetAge(v any, cs callState) any {
	n, ok := toInt(v)
	if !ok || n < cs.decade || n > 100 {
		return cs.decade
	}
	return n / 10 * 10
}

func parseCompleted(v any, _ callState) any {
	if b, ok := v.(bool); ok {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(toString(v))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// completed_at: valid non-future timestamp -> ISO-8601 UTC, otherwise null.
// The cross-field pass may still override the result.
func parseCompletedAt(v any, cs callState) any {
	t, ok := toTime(v)
	if !ok || t.After(cs.now) {
		return nil
	}
	return t.UTC().Format(isoMillis)
}

func parseImageURL(v any, _ callState) any {
	s := strings.TrimSpace(toString(v))
	if strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "data:image/") {
		return s
	}
	return ""
}

func parseText(v any, _ callState) any {
	return strings.TrimSpace(toString(v))
}

// toString renders any cell as a string; nil and absent become "".
func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.UTC().Format(isoMillis)
	default:
		return ""
	}
}

// toInt parses an integer out of a cell. Fractions truncate, everything
// non-numeric reports false.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int(x), true
	case float32:
		return toInt(float64(x))
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Accepted string layouts for completed_at cells, checked in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
