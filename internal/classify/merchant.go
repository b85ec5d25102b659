package classify

import (
	"regexp"
	"strings"
)

// merchantPatterns are tried in order against the description; the first
// capture wins. Absence of a match is a valid outcome, not an error.
var merchantPatterns = []*regexp.Regexp{
	// All-caps prefix token, e.g. "WALMART SUPERCENTER #1234" -> "WALMART SUPERCENTER"
	regexp.MustCompile(`^([A-Z][A-Z&'.\- ]{2,}[A-Z])`),
	// Name-like prefix followed by a digit, e.g. "Trader Joes 052" -> "Trader Joes"
	regexp.MustCompile(`^([A-Za-z][A-Za-z&'.\- ]+?)\s*#?\d`),
	// Name-like string consuming the whole description
	regexp.MustCompile(`^([A-Za-z][A-Za-z&'.\- ]+)$`),
}

// Merchant extracts a short merchant token from a transaction description.
// Returns the empty string when no pattern matches.
func Merchant(description string) string {
	description = strings.TrimSpace(description)
	for _, pattern := range merchantPatterns {
		if matches := pattern.FindStringSubmatch(description); len(matches) > 1 {
			return strings.TrimSpace(matches[1])
		}
	}
	return ""
}
