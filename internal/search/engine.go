package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"fjacquet/orcamento/internal/models"
)

// Relevance weights.
const (
	scoreDescriptionMatch = 10.0
	scoreCategoryMatch    = 8.0
	scoreLeadingMatch     = 5.0
	scoreInnerMatch       = 2.0
	scoreCoverageWeight   = 3.0
)

// Result is a transaction with the relevance score it was ranked by.
type Result struct {
	Transaction models.Transaction `json:"transaction"`
	Score       float64            `json:"score"`
}

// Filter returns the transactions satisfying cfg, in input order. A
// transaction is kept when its searchable text matches the term, its category
// is among the filter categories (if any), its amount lies within the valid
// bounds and the include/exclude terms check passes.
func Filter(txs []models.Transaction, cfg models.SearchConfig) []models.Transaction {
	out := []models.Transaction{}
	if len(txs) == 0 {
		return out
	}

	query := Compile(cfg)
	f := cfg.Filters
	lower, hasMin := f.MinAmount()
	upper, hasMax := f.MaxAmount()

	for _, tx := range txs {
		searchable := tx.Searchable()

		if cfg.Term != "" && !query.Match(searchable) {
			continue
		}
		if len(f.Categories) > 0 && !f.HasCategory(tx.Category) {
			continue
		}
		if hasMin && tx.Amount.LessThan(lower) {
			continue
		}
		if hasMax && tx.Amount.GreaterThan(upper) {
			continue
		}
		if !CheckTerms(searchable, f.IncludeTerms, f.ExcludeTerms, cfg.CaseSensitive) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Score returns the relevance of tx for the term of cfg. The term and texts
// are lowercased unless the search is case sensitive; there is no accent
// folding.
func Score(tx models.Transaction, cfg models.SearchConfig) float64 {
	term, description, category := cfg.Term, tx.Description, tx.Category
	if !cfg.CaseSensitive {
		term = strings.ToLower(term)
		description = strings.ToLower(description)
		category = strings.ToLower(category)
	}

	var score float64
	if strings.Contains(description, term) {
		score += scoreDescriptionMatch
	}
	if strings.Contains(category, term) {
		score += scoreCategoryMatch
	}

	switch idx := strings.Index(description, term); {
	case idx == 0:
		score += scoreLeadingMatch
	case idx > 0:
		score += scoreInnerMatch
	}

	if n := utf8.RuneCountInString(description); n > 0 {
		score += float64(utf8.RuneCountInString(term)) / float64(n) * scoreCoverageWeight
	}
	return score
}

// Rank scores txs and returns them ordered by descending score. Ties keep
// their input order. With an empty term every score is zero and the input
// order is kept.
func Rank(txs []models.Transaction, cfg models.SearchConfig) []Result {
	results := make([]Result, len(txs))
	for i, tx := range txs {
		results[i] = Result{Transaction: tx}
		if cfg.Term != "" {
			results[i].Score = Score(tx, cfg)
		}
	}
	if cfg.Term == "" {
		return results
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// RankByRelevance orders txs by descending relevance to the term of cfg. It
// returns the input unchanged when the term is empty.
func RankByRelevance(txs []models.Transaction, cfg models.SearchConfig) []models.Transaction {
	if cfg.Term == "" || len(txs) == 0 {
		return txs
	}

	ranked := Rank(txs, cfg)
	out := make([]models.Transaction, len(ranked))
	for i, r := range ranked {
		out[i] = r.Transaction
	}
	return out
}

// Search filters txs with cfg and ranks what is left.
func Search(txs []models.Transaction, cfg models.SearchConfig) []Result {
	return Rank(Filter(txs, cfg), cfg)
}
