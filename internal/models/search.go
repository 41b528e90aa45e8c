package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SearchMode selects how the search term is compared with transaction text.
type SearchMode string

const (
	SearchModeContains SearchMode = "contains"
	SearchModeExact    SearchMode = "exact"
	SearchModeStarts   SearchMode = "starts"
	SearchModeEnds     SearchMode = "ends"
	SearchModeRegex    SearchMode = "regex"
	SearchModeFuzzy    SearchMode = "fuzzy"
)

// SearchModes lists the recognised modes.
var SearchModes = []SearchMode{
	SearchModeContains,
	SearchModeExact,
	SearchModeStarts,
	SearchModeEnds,
	SearchModeRegex,
	SearchModeFuzzy,
}

// ParseSearchMode maps a literal to its mode. Unknown literals, including the
// empty string, fall back to contains.
func ParseSearchMode(s string) SearchMode {
	for _, m := range SearchModes {
		if string(m) == s {
			return m
		}
	}
	return SearchModeContains
}

// StructuredFilters are the non-text constraints of a search. Amount bounds
// are kept as entered; a bound that is empty or not a number is ignored.
type StructuredFilters struct {
	Categories    []string   `json:"categories,omitempty"`
	AmountMin     string     `json:"amountMin,omitempty"`
	AmountMax     string     `json:"amountMax,omitempty"`
	IncludeTerms  string     `json:"includeTerms,omitempty"`
	ExcludeTerms  string     `json:"excludeTerms,omitempty"`
	SearchMode    SearchMode `json:"searchMode,omitempty"`
	CaseSensitive bool       `json:"caseSensitive,omitempty"`
}

// MinAmount returns the lower bound and whether it is set.
func (f StructuredFilters) MinAmount() (decimal.Decimal, bool) {
	return parseBound(f.AmountMin)
}

// MaxAmount returns the upper bound and whether it is set.
func (f StructuredFilters) MaxAmount() (decimal.Decimal, bool) {
	return parseBound(f.AmountMax)
}

// HasCategory reports whether name is in the category filter.
func (f StructuredFilters) HasCategory(name string) bool {
	for _, c := range f.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with f.
func (f StructuredFilters) Clone() StructuredFilters {
	out := f
	if f.Categories != nil {
		out.Categories = append([]string{}, f.Categories...)
	}
	return out
}

func parseBound(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// SearchConfig is one query: term, comparison mode, case policy and filters.
// It is built per query and not modified while a filter pass runs.
type SearchConfig struct {
	Term          string            `json:"term"`
	Mode          SearchMode        `json:"mode"`
	CaseSensitive bool              `json:"caseSensitive"`
	Filters       StructuredFilters `json:"filters"`
}

// NewSearchConfig builds a config whose mode and case policy come from the
// filters.
func NewSearchConfig(term string, filters StructuredFilters) SearchConfig {
	return SearchConfig{
		Term:          term,
		Mode:          ParseSearchMode(string(filters.SearchMode)),
		CaseSensitive: filters.CaseSensitive,
		Filters:       filters.Clone(),
	}
}
