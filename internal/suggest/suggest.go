// Package suggest provides search autocomplete and usage analytics over the
// recent-search history, and keeps that history and the user's saved
// searches in the settings store.
package suggest

import (
	"strings"
	"unicode/utf8"

	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/textutils"
)

// MaxSuggestions caps the number of suggestions returned.
const MaxSuggestions = 8

// MinQueryLength is the shortest query that produces suggestions.
const MinQueryLength = 2

var commonTerms = []string{
	"supermercado", "restaurante", "farmacia", "posto", "uber", "ifood",
	"netflix", "spotify", "amazon", "mercado", "padaria", "transporte",
}

// Suggest completes query from past search terms first, then from the common
// terms. Comparison ignores case; results are distinct, in first-seen order
// and at most MaxSuggestions long.
func Suggest(query string, history []models.SearchHistoryEntry) []string {
	out := []string{}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return out
	}

	needle := strings.ToLower(query)
	seen := make(map[string]struct{})
	add := func(term string) bool {
		if _, dup := seen[term]; !dup {
			seen[term] = struct{}{}
			out = append(out, term)
		}
		return len(out) >= MaxSuggestions
	}

	for _, entry := range history {
		if strings.Contains(strings.ToLower(entry.Term), needle) && add(entry.Term) {
			return out
		}
	}
	for _, term := range commonTerms {
		if strings.Contains(term, needle) && add(term) {
			return out
		}
	}
	return out
}

// AnalyzePatterns summarizes history: how often each significant term, filter
// category and search mode was used, when searches happen and how long terms
// are on average. Entries without a timestamp are left out of the time of
// day counts only.
func AnalyzePatterns(history []models.SearchHistoryEntry) models.PatternSummary {
	summary := models.NewPatternSummary()
	if len(history) == 0 {
		return summary
	}

	totalLength := 0
	for _, entry := range history {
		for _, term := range textutils.ExtractTerms(entry.Term) {
			summary.MostSearchedTerms[term]++
		}
		for _, category := range entry.Filters.Categories {
			summary.MostSearchedCategories[category]++
		}

		mode := entry.Filters.SearchMode
		if mode == "" {
			mode = models.SearchModeContains
		}
		summary.SearchModes[string(mode)]++

		if !entry.Timestamp.IsZero() {
			summary.TimeOfDay[period(entry.Timestamp.Hour())]++
		}

		totalLength += utf8.RuneCountInString(entry.Term)
	}

	summary.AverageSearchLength = float64(totalLength) / float64(len(history))
	return summary
}

func period(hour int) string {
	switch {
	case hour < 12:
		return models.PeriodMorning
	case hour < 18:
		return models.PeriodAfternoon
	default:
		return models.PeriodEvening
	}
}
