// Package repr holds the truncation rules of the diagnostic text form of
// records. Output is for people only and must never be parsed or persisted.
package repr

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxWidth  = 160 // whole line
	MaxString = 40  // one scalar
	MaxItems  = 3   // sequence and mapping entries
	Ellipsis  = "..."
)

// Clip shortens s to at most n runes, the last three being the ellipsis.
func Clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= len(Ellipsis) {
		return Ellipsis[:n]
	}
	r := []rune(s)
	return string(r[:n-len(Ellipsis)]) + Ellipsis
}

// Quote clips s to MaxString and quotes it.
func Quote(s string) string { return strconv.Quote(Clip(s, MaxString)) }

// Seq joins at most MaxItems rendered items between open and close; total is
// the full length, used to append an ellipsis when items were dropped.
func Seq(open, close string, items []string, total int) string {
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	var b strings.Builder
	b.WriteString(open)
	b.WriteString(strings.Join(items, ", "))
	if total > len(items) {
		if len(items) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Ellipsis)
	}
	b.WriteString(close)
	return b.String()
}
