package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency renders a dollar amount with thousands separators, e.g.
// "$1,234,567.89". Negative amounts keep the sign ahead of the symbol.
func FormatCurrency(d decimal.Decimal) string {
	negative := d.IsNegative()
	s := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

// FormatPercentage renders a fractional rate as a percentage, e.g.
// 0.068 -> "6.8%".
func FormatPercentage(d decimal.Decimal) string {
	return d.Mul(hundred).StringFixed(1) + "%"
}
