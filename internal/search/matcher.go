// Package search filters and ranks transactions for a search query: text
// matching in six modes, structured filters and a relevance score.
package search

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/textutils"

	"github.com/agnivade/levenshtein"
)

// FuzzyThreshold is the minimum similarity for a fuzzy match.
const FuzzyThreshold = 0.8

// Query is a SearchConfig prepared for repeated matching: the term is
// normalized and, in regex mode, compiled once.
type Query struct {
	term          string
	prepared      string
	mode          models.SearchMode
	caseSensitive bool
	re            *regexp.Regexp
}

// Compile prepares cfg for matching. An invalid regular expression is not an
// error: the query then matches nothing.
func Compile(cfg models.SearchConfig) *Query {
	q := &Query{
		term:          cfg.Term,
		mode:          models.ParseSearchMode(string(cfg.Mode)),
		caseSensitive: cfg.CaseSensitive,
	}
	q.prepared = q.prepare(cfg.Term)

	if q.mode == models.SearchModeRegex && cfg.Term != "" {
		pattern := cfg.Term
		if !cfg.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		if re, err := regexp.Compile(pattern); err == nil {
			q.re = re
		}
	}
	return q
}

func (q *Query) prepare(s string) string {
	if q.caseSensitive {
		return s
	}
	return textutils.Normalize(s)
}

// Match reports whether text satisfies the query. An empty term matches
// every text.
func (q *Query) Match(text string) bool {
	if q.term == "" {
		return true
	}

	if q.mode == models.SearchModeRegex {
		return q.re != nil && q.re.MatchString(text)
	}

	prepared := q.prepare(text)
	switch q.mode {
	case models.SearchModeExact:
		return prepared == q.prepared
	case models.SearchModeStarts:
		return strings.HasPrefix(prepared, q.prepared)
	case models.SearchModeEnds:
		return strings.HasSuffix(prepared, q.prepared)
	case models.SearchModeFuzzy:
		return FuzzyMatch(prepared, q.prepared, FuzzyThreshold)
	default:
		return strings.Contains(prepared, q.prepared)
	}
}

// Matches reports whether text satisfies the search term of cfg.
func Matches(text string, cfg models.SearchConfig) bool {
	return Compile(cfg).Match(text)
}

// FuzzyMatch compares the whole of text with pattern, ignoring case. The
// similarity is 1 - distance/longest, with the Levenshtein distance counted
// in runes. Empty input on either side never matches.
func FuzzyMatch(text, pattern string, threshold float64) bool {
	if text == "" || pattern == "" {
		return false
	}
	a, b := strings.ToLower(text), strings.ToLower(pattern)

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	similarity := 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
	return similarity >= threshold
}

// CheckTerms reports whether text contains every comma-separated include term
// and none of the exclude terms. Terms are trimmed and blanks ignored. Unless
// caseSensitive, text and terms are normalized first; a term that normalizes
// to nothing (pure punctuation) is ignored too.
func CheckTerms(text, include, exclude string, caseSensitive bool) bool {
	prepare := textutils.Normalize
	if caseSensitive {
		prepare = func(s string) string { return s }
	}
	prepared := prepare(text)

	for _, term := range splitTerms(include, prepare) {
		if !strings.Contains(prepared, term) {
			return false
		}
	}
	for _, term := range splitTerms(exclude, prepare) {
		if strings.Contains(prepared, term) {
			return false
		}
	}
	return true
}

func splitTerms(list string, prepare func(string) string) []string {
	var terms []string
	for _, part := range strings.Split(list, ",") {
		if t := prepare(strings.TrimSpace(part)); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
