package store

import (
	"math"
	"time"
)

// Record is one document fetched from the store: an open-ended field map plus
// its stable identifier under "id". Accessors never panic — a missing or
// wrong-typed field reads as the zero value, so malformed documents degrade
// to zero contribution instead of crashing an analysis run.
type Record map[string]any

// ID returns the document identifier.
func (r Record) ID() string {
	return r.Str("id")
}

// Str returns the named field as a string, or "" when absent or non-string.
func (r Record) Str(field string) string {
	s, _ := r[field].(string)
	return s
}

// Num returns the named field as a float64. Missing fields, non-numeric
// values and NaN all read as 0.
func (r Record) Num(field string) float64 {
	n, _ := r.NumOK(field)
	return n
}

// NumOK returns the named field as a float64 and whether the field holds a
// usable number. NaN and Inf are not usable.
func (r Record) NumOK(field string) (float64, bool) {
	v, present := r[field]
	if !present {
		return 0, false
	}
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// NumFirst resolves the first of several legacy field names that holds a
// usable number, preferring earlier names. Zero is a usable value: a primary
// field explicitly set to 0 shadows a populated fallback.
func (r Record) NumFirst(fields ...string) float64 {
	for _, f := range fields {
		if n, ok := r.NumOK(f); ok {
			return n
		}
	}
	return 0
}

// Bool returns the named field as a bool, or def when absent or non-bool.
func (r Record) Bool(field string, def bool) bool {
	b, ok := r[field].(bool)
	if !ok {
		return def
	}
	return b
}

// List returns the named field as a raw list, or nil.
func (r Record) List(field string) []any {
	l, _ := r[field].([]any)
	return l
}

// Maps returns the named field as a list of embedded records, skipping
// elements that are not maps.
func (r Record) Maps(field string) []Record {
	l := r.List(field)
	if len(l) == 0 {
		return nil
	}
	out := make([]Record, 0, len(l))
	for _, v := range l {
		if m, ok := v.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// timeLayouts are the string representations the front end has historically
// written for date fields.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time normalizes the named field to a time.Time. The store returns native
// timestamps for some documents and strings or unix seconds for older ones;
// all downstream code sees one consistent type. The second return is false
// when the field is absent or unparseable.
func (r Record) Time(field string) (time.Time, bool) {
	switch x := r[field].(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.Unix(x, 0).UTC(), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return time.Time{}, false
		}
		sec, frac := math.Modf(x)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
	default:
		return time.Time{}, false
	}
}
