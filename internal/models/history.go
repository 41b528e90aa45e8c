package models

import "time"

// SearchHistoryEntry is one recent search.
type SearchHistoryEntry struct {
	ID        string            `json:"id"`
	Term      string            `json:"term"`
	Filters   StructuredFilters `json:"filters"`
	Timestamp time.Time         `json:"timestamp"`
}

// SavedSearch is a named search kept by the user.
type SavedSearch struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Term      string            `json:"term"`
	Filters   StructuredFilters `json:"filters"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Config rebuilds the search config the saved search describes.
func (s SavedSearch) Config() SearchConfig {
	return NewSearchConfig(s.Term, s.Filters)
}

// Time-of-day buckets used by PatternSummary.
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

// PatternSummary aggregates a search history.
type PatternSummary struct {
	MostSearchedTerms      map[string]int `json:"mostSearchedTerms"`
	MostSearchedCategories map[string]int `json:"mostSearchedCategories"`
	SearchModes            map[string]int `json:"searchModes"`
	TimeOfDay              map[string]int `json:"timeOfDay"`
	AverageSearchLength    float64        `json:"averageSearchLength"`
}

// NewPatternSummary returns an empty summary with all maps allocated.
func NewPatternSummary() PatternSummary {
	return PatternSummary{
		MostSearchedTerms:      map[string]int{},
		MostSearchedCategories: map[string]int{},
		SearchModes:            map[string]int{},
		TimeOfDay:              map[string]int{},
	}
}
