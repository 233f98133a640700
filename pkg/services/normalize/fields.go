package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/de-tools/profit-atlas/pkg/models/store"
)

// Lookup resolves one candidate location for a value inside a raw record.
// Each upstream API names the same concept differently and some bury values
// under metadata/metrics/budget sub-objects, so every canonical field is
// read through an ordered chain of lookups, first hit wins.
type Lookup func(rec store.RawRecord) (any, bool)

// Field reads a (possibly nested) path of map keys.
func Field(path ...string) Lookup {
	return func(rec store.RawRecord) (any, bool) {
		var cur any = map[string]any(rec)
		for _, key := range path {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[key]
			if !ok || cur == nil {
				return nil, false
			}
		}
		return cur, true
	}
}

// Chain is an ordered fallback chain. The typed accessors walk the chain and
// coerce the first present value; anything missing or mistyped degrades to
// the safe default instead of failing.
type Chain []Lookup

func (c Chain) Float(rec store.RawRecord) float64 {
	for _, lookup := range c {
		if v, ok := lookup(rec); ok {
			if f, ok := asFloat(v); ok {
				return f
			}
		}
	}
	return 0
}

func (c Chain) Int(rec store.RawRecord) int {
	return int(c.Float(rec))
}

func (c Chain) String(rec store.RawRecord) string {
	return c.StringOr(rec, "-")
}

func (c Chain) StringOr(rec store.RawRecord, def string) string {
	for _, lookup := range c {
		if v, ok := lookup(rec); ok {
			if s, ok := asString(v); ok && s != "" {
				return s
			}
		}
	}
	return def
}

func (c Chain) Bool(rec store.RawRecord) bool {
	for _, lookup := range c {
		if v, ok := lookup(rec); ok {
			if b, ok := asBool(v); ok {
				return b
			}
		}
	}
	return false
}

func (c Chain) Slice(rec store.RawRecord) []any {
	for _, lookup := range c {
		if v, ok := lookup(rec); ok {
			if s, ok := v.([]any); ok {
				return s
			}
		}
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(t)))
		return b, err == nil
	case float64:
		return t != 0, true
	default:
		return false, false
	}
}
