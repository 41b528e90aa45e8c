package search

import (
	"regexp"

	"fjacquet/orcamento/internal/textutils"
)

// Highlight wraps every literal occurrence of term in text with open and
// close. Matching ignores case unless caseSensitive. Empty text or term
// returns text unchanged.
func Highlight(text, term string, caseSensitive bool, open, close string) string {
	if text == "" || term == "" {
		return text
	}

	pattern := textutils.EscapeRegex(term)
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re := regexp.MustCompile(pattern)

	return re.ReplaceAllStringFunc(text, func(m string) string {
		return open + m + close
	})
}
