package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Totals are always derived from the lines at render time; amounts supplied
// by the caller are never trusted.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals sums the lines and applies the tax rate. The tax amount is
// rounded to cents before it enters the grand total.
func (q Quotation) ComputeTotals(taxRate decimal.Decimal) Totals {
	sub := decimal.Zero
	for _, l := range q.Lines {
		sub = sub.Add(l.Total())
	}
	tax := sub.Mul(taxRate).Round(2)
	return Totals{
		Subtotal:   sub,
		TaxAmount:  tax,
		GrandTotal: sub.Add(tax),
	}
}

// FormatAmount renders a money amount with two decimals and comma thousands
// separators, e.g. 1234567.8 -> "1,234,567.80".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
