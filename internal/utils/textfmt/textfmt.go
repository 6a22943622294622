// Package textfmt holds the locale-independent value formatters shared by the
// export encoders. Every function here is deterministic: equal input yields
// byte-equal output regardless of host locale or timezone.
package textfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoLayout renders extended ISO-8601 with exactly three fractional digits.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOTimestamp renders t as extended ISO-8601 with fractional seconds in UTC,
// e.g. "2024-03-02T14:05:09.123Z". The output parses with any RFC 3339 parser.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Decimal1 renders x with exactly one decimal place and a '.' separator,
// e.g. Decimal1(18.5) == "18.5".
func Decimal1(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64)
}

// HumanBytes renders a byte count using 1000-based KB/MB units.
// Counts below 1 KB render as plain bytes.
func HumanBytes(n int64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%d B", n)
	case n < 1_000_000:
		return fmt.Sprintf("%.1f KB", float64(n)/1_000)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/1_000_000)
	}
}

// CSVEscape doubles embedded quotes and wraps the field in quotes whenever it
// contains a comma, quote, or line break; otherwise the field is returned
// unchanged. Callers must pass every CSV field through this, including ones
// that look safe, so the output stays parseable by standard CSV readers.
func CSVEscape(s string) string {
	escaped := strings.ReplaceAll(s, `"`, `""`)
	if strings.ContainsAny(escaped, "\",\n\r") {
		return `"` + escaped + `"`
	}
	return escaped
}
