package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// IsValid reports whether a raw field value carries usable data: numbers must
// be non-zero (NaN never counts), strings non-blank, lists non-empty, and nil
// is never valid. Values of other defined types pass. Every analyzer routes
// its record filtering through this one predicate.
func IsValid(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case decimal.Decimal:
		return !x.IsZero()
	case []any:
		return len(x) > 0
	case []store.Record:
		return len(x) > 0
	default:
		return true
	}
}

// CountValid counts records whose named field satisfies IsValid.
func CountValid(items []store.Record, field string) int {
	n := 0
	for _, r := range items {
		if IsValid(r[field]) {
			n++
		}
	}
	return n
}

// CountWhere counts records satisfying a caller-supplied predicate.
func CountWhere(items []store.Record, pred func(store.Record) bool) int {
	n := 0
	for _, r := range items {
		if pred(r) {
			n++
		}
	}
	return n
}

// SumValid sums the named numeric field across records. Missing, non-numeric,
// zero and NaN values contribute nothing. The result is unrounded; callers
// apply Round2 at the report boundary.
func SumValid(items []store.Record, field string) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range items {
		if n, ok := r.NumOK(field); ok && n != 0 {
			sum = sum.Add(decimal.NewFromFloat(n))
		}
	}
	return sum
}

// filterRecords returns the records satisfying pred, preserving input order.
func filterRecords(items []store.Record, pred func(store.Record) bool) []store.Record {
	var out []store.Record
	for _, r := range items {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Round2 rounds a monetary amount to 2 decimal places. Applied only at the
// point of return, never during accumulation.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
