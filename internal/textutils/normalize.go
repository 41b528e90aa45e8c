// Package textutils provides the text normalization shared by classification
// and search: accent and punctuation folding, tokenization and stopwords.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinTermLength is the shortest token ExtractTerms keeps.
const MinTermLength = 3

var stopWords = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {},
	"e": {}, "ou": {}, "a": {}, "o": {}, "as": {}, "os": {},
	"em": {}, "no": {}, "na": {}, "nos": {}, "nas": {},
}

// stripMarks decomposes to NFD and drops the combining marks. Transformers
// carry state, so each call builds its own chain.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}

// Normalize lowercases text, strips diacritics, turns every character that is
// neither a word character ([A-Za-z0-9_]) nor whitespace into a space,
// collapses whitespace runs and trims. The result is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks(), strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}

	mapped := strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return ' '
	}, folded)

	return strings.Join(strings.Fields(mapped), " ")
}

// ExtractTerms normalizes text and returns its distinct significant tokens in
// first-seen order. Tokens shorter than MinTermLength and Portuguese
// stopwords are dropped.
func ExtractTerms(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	terms := []string{}
	for _, token := range strings.Fields(normalized) {
		if len(token) < MinTermLength || IsStopWord(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		terms = append(terms, token)
	}
	return terms
}

// IsStopWord reports whether token is one of the Portuguese stopwords.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
