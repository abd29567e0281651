package util

import (
	"strings"
	"unicode"
)

// NormalizeKey lowercases s, turns punctuation into spaces and collapses runs of
// whitespace so that "  New-York " and "new york" map to the same key.
func NormalizeKey(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}
