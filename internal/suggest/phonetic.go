package suggest

import (
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/textutils"
)

// SoundsLike returns the description terms of txs that share the Soundex
// code of query, excluding query itself. Terms come from ExtractTerms, are
// distinct and in first-seen order, and at most MaxSuggestions are returned.
func SoundsLike(query string, txs []models.Transaction) []string {
	out := []string{}
	needle := textutils.Normalize(query)
	if len([]rune(needle)) < MinQueryLength {
		return out
	}
	code := textutils.Soundex(needle)

	seen := map[string]struct{}{needle: {}}
	for _, tx := range txs {
		for _, term := range textutils.ExtractTerms(tx.Description) {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			if textutils.Soundex(term) == code {
				out = append(out, term)
				if len(out) >= MaxSuggestions {
					return out
				}
			}
		}
	}
	return out
}
