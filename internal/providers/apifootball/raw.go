package apifootball

import (
	"strconv"
	"strings"
)

// The upstream feed is loosely shaped: the same field can arrive as a
// string, a number, or be absent entirely. Records are therefore
// decoded as generic maps and read through these accessors, which
// centralizes the "never panic, coerce or default" contract.

func rawString(rec map[string]any, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// Upstream IDs sometimes arrive as JSON numbers.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// rawScore coerces a score field to a non-negative int; any parse
// failure (empty string, junk, missing) yields 0.
func rawScore(rec map[string]any, key string) int {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}

// rawTruthy reports whether a flag field holds a truthy value ("1",
// "true", non-zero number, true).
func rawTruthy(rec map[string]any, key string) bool {
	v, ok := rec[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		s := strings.TrimSpace(t)
		return s == "1" || strings.EqualFold(s, "true")
	default:
		return false
	}
}

func rawList(rec map[string]any, key string) []map[string]any {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
