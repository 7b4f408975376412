package validators

import "strings"

// SanitizeString trims surrounding whitespace and truncates to maxLen runes.
// Truncation counts runes, not bytes, so characters like č, š and ž are never
// split mid-sequence.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) <= maxLen {
		return trimmed
	}
	return string(runes[:maxLen])
}
