// Package models provides the data structures shared by the classification
// and search engine.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an expense record as held by the external store. The engine
// reads it and derives Category; it never mutates a caller's value.
type Transaction struct {
	ID          string          `csv:"id" json:"id"`
	Date        time.Time       `csv:"date" json:"date"`
	Description string          `csv:"description" json:"description"`
	Category    string          `csv:"category" json:"category"`
	Amount      decimal.Decimal `csv:"amount" json:"amount"`
}

// Searchable is the text the search engine matches against:
// description and category joined by a space.
func (t Transaction) Searchable() string {
	return t.Description + " " + t.Category
}

// IsUncategorized reports whether the transaction carries no category or the
// fallback category.
func (t Transaction) IsUncategorized() bool {
	return t.Category == "" || t.Category == CategoryOther
}
