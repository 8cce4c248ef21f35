package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a cents amount with thousands separators and a dollar sign.
// Example: -1234.5 returns "-$1,234.50"
func FormatMoney(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + b.String() + "." + frac
}
