package common

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// SentinelDate replaces any date cell that does not parse. This includes
// cells that already carry an ISO date; only the month/day/year source form
// is accepted. Kept for compatibility with the established datasets, but
// flagged for product review.
const SentinelDate = "1900-01-01"

// sourceDateLayout accepts both padded and unpadded month/day values,
// e.g. "3/5/2014" and "03/05/2014".
const sourceDateLayout = "1/2/2006"

// CoerceDate parses a month/day/year cell and renders it as YYYY-MM-DD.
// Anything unparsable (empty, malformed, out of range) yields SentinelDate.
func CoerceDate(raw string) string {
	t, err := time.Parse(sourceDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return SentinelDate
	}
	return t.Format("2006-01-02")
}

// CoerceReal parses a floating-point cell. Unparsable cells yield 0.0.
// ParseFloat accepts "nan" without error, but SQLite stores NaN as NULL,
// so NaN counts as unparsable here.
func CoerceReal(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return 0.0
	}
	return f
}

// CoerceInteger parses an integer cell via float-then-truncate, so "3.9"
// becomes 3 and "-3.9" becomes -3. Unparsable cells yield 0, as do NaN,
// infinities and values outside the int64 range, whose float-to-int
// conversion is implementation-defined in Go.
func CoerceInteger(raw string) int64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	// math.MaxInt64 rounds up to 2^63 as a float64, so >= catches every
	// float at or above the first unrepresentable value.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// CoerceValue applies the column's coercion rule to a raw cell.
func CoerceValue(col Column, raw string) interface{} {
	switch col.Type {
	case TypeDate:
		return CoerceDate(raw)
	case TypeReal:
		return CoerceReal(raw)
	case TypeInteger:
		return CoerceInteger(raw)
	default:
		return raw
	}
}

// CoerceRow converts a record in schema column order into typed values
// ready for insertion. No value is ever nil; missing or unparsable cells
// get the column type's default.
func CoerceRow(record []string) []interface{} {
	values := make([]interface{}, len(OrderColumns))
	for i, col := range OrderColumns {
		var raw string
		if i < len(record) {
			raw = record[i]
		}
		values[i] = CoerceValue(col, raw)
	}
	return values
}
