package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCOP renders an amount in pesos with dot thousand separators, rounded
// to whole pesos: 153500 -> "$153.500".
func FormatCOP(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatHours prints hours with at most two decimals: 8 -> "8", 1.5 -> "1,5".
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return strings.Replace(s, ".", ",", 1)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
