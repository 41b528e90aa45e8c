// Package categorizer assigns budget categories to transactions from the
// keyword rule set. Classify is the pure decision; Categorizer pulls a fresh
// rule snapshot for every call and logs the outcome of batch passes.
package categorizer

import (
	"errors"

	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/parsererror"
)

var errNoRuleSource = errors.New("no rule source configured")

// RuleSource supplies the active rule set. rules.RuleStore implements it.
type RuleSource interface {
	GetActive() models.KeywordRuleSet
}

// Categorizer classifies titles and transactions against the active rules.
type Categorizer struct {
	rules  RuleSource
	logger logging.Logger
}

// NewCategorizer creates a Categorizer reading rules from source.
func NewCategorizer(source RuleSource, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		rules:  source,
		logger: logger.WithField(logging.FieldComponent, "Categorizer"),
	}
}

// CategorizeTitle classifies a single title against the current rules.
func (c *Categorizer) CategorizeTitle(title string) (string, error) {
	if c.rules == nil {
		return "", &parsererror.CategorizationError{Transaction: title, Err: errNoRuleSource}
	}
	return Classify(title, c.rules.GetActive()), nil
}

// CategorizeTransactions returns copies of txs with Category set from their
// descriptions. The rules are read once per call, so every transaction in the
// batch sees the same snapshot. The input slice is not modified.
func (c *Categorizer) CategorizeTransactions(txs []models.Transaction, source string) ([]models.Transaction, error) {
	if c.rules == nil {
		return nil, &parsererror.CategorizationError{Transaction: source, Err: errNoRuleSource}
	}

	ruleSet := c.rules.GetActive()
	stats := models.NewCategorizationStats()
	out := make([]models.Transaction, len(txs))

	for i, tx := range txs {
		category, keyword := matchTitle(tx.Description, ruleSet)
		tx.Category = category
		out[i] = tx
		stats.Record(category)

		if keyword != "" {
			c.logger.Debug("Transaction categorized using keyword matching",
				logging.Field{Key: "description", Value: tx.Description},
				logging.Field{Key: logging.FieldKeyword, Value: keyword},
				logging.Field{Key: logging.FieldCategory, Value: category})
		}
	}

	stats.LogSummary(c.logger, source)
	return out, nil
}
