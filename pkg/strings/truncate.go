package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the width tool descriptions are cut to in the
// tools table.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the smallest maxLen TruncateDescription accepts: one
// character plus "...".
const MinTruncateLen = 4

// TruncateDescription collapses all whitespace in s to single spaces and cuts
// the result to maxLen runes, ending it with "..." when anything was removed.
// maxLen values below MinTruncateLen are raised to it.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// OrDefault returns s, or fallback when s is empty.
func OrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// JoinOrDefault joins items with sep, returning fallback when the result is
// empty.
func JoinOrDefault(items []string, sep, fallback string) string {
	return OrDefault(strings.Join(items, sep), fallback)
}
