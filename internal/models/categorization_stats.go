package models

import (
	"fjacquet/orcamento/internal/logging"
)

// CategorizationStats tracks the outcome of a classification pass.
type CategorizationStats struct {
	Total         int
	Categorized   int
	Uncategorized int
	PerCategory   map[string]int
}

// NewCategorizationStats creates an empty CategorizationStats.
func NewCategorizationStats() *CategorizationStats {
	return &CategorizationStats{PerCategory: map[string]int{}}
}

// Record counts one classified transaction.
func (cs *CategorizationStats) Record(category string) {
	if cs.PerCategory == nil {
		cs.PerCategory = map[string]int{}
	}
	cs.Total++
	cs.PerCategory[category]++
	if category == CategoryOther {
		cs.Uncategorized++
	} else {
		cs.Categorized++
	}
}

// GetSuccessRate returns the share of transactions that matched a rule, as a percentage.
func (cs CategorizationStats) GetSuccessRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Categorized) / float64(cs.Total) * 100.0
}

// LogSummary logs a summary of categorization statistics
func (cs CategorizationStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: "source", Value: source},
		logging.Field{Key: "total_transactions", Value: cs.Total},
		logging.Field{Key: "categorized", Value: cs.Categorized},
		logging.Field{Key: "uncategorized", Value: cs.Uncategorized},
		logging.Field{Key: "success_rate", Value: cs.GetSuccessRate()},
	)
}
