// Package currencyutils formats amounts for display.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the prefix of formatted amounts.
const CurrencySymbol = "R$"

// FormatBRL renders amount the way Brazilian statements show it: "R$ 1.234,56".
// Negative amounts are prefixed with a minus sign, "-R$ 12,00".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	b.WriteByte(' ')
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
