// Package report aggregates transactions into per-category and per-month
// totals and renders them.
package report

import (
	"fmt"
	"sort"

	"fjacquet/orcamento/internal/models"

	"github.com/shopspring/decimal"
)

var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Group is the total of a set of transactions sharing a key.
type Group struct {
	Key          string
	Label        string
	Total        decimal.Decimal
	Count        int
	Transactions []models.Transaction
}

// GroupByCategory totals txs per category, largest total first. Groups with
// equal totals keep the order their category first appeared in.
func GroupByCategory(txs []models.Transaction) []Group {
	groups := group(txs, func(tx models.Transaction) (string, string) {
		return tx.Category, tx.Category
	})
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups
}

// GroupByMonth totals txs per calendar month keyed YYYY-MM, oldest first.
func GroupByMonth(txs []models.Transaction) []Group {
	groups := group(txs, func(tx models.Transaction) (string, string) {
		return tx.Date.Format("2006-01"), MonthLabel(tx.Date.Year(), int(tx.Date.Month()))
	})
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// MonthLabel renders a month as a short Portuguese label such as "mar 2024".
func MonthLabel(year, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%s %d", monthAbbrev[month-1], year)
}

func group(txs []models.Transaction, keyOf func(models.Transaction) (string, string)) []Group {
	index := make(map[string]int)
	groups := []Group{}
	for _, tx := range txs {
		key, label := keyOf(tx)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Label: label, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(tx.Amount)
		groups[i].Count++
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}

// Total sums the group totals.
func Total(groups []Group) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range groups {
		sum = sum.Add(g.Total)
	}
	return sum
}
