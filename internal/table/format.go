// Package table filters, sorts and renders collections of social records.
// Every function here is pure.
package table

import (
	"html"
	"strconv"
)

// FormatNumber abbreviates large counts: 999 -> "999", 1500 -> "1.5K",
// 2340000 -> "2.3M". Counts are non-negative.
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	}
	return strconv.Itoa(n)
}

// EscapeHTML makes text safe to place inside element content or a quoted
// attribute value. It neutralizes < > & ' and ".
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return html.EscapeString(text)
}
