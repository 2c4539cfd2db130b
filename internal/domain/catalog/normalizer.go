package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type columnRole int

const (
	roleNone columnRole = iota
	rolePrice
	roleDesc
	roleUnit
)

// classify maps a free-form header to the field it feeds. Precedence per
// column: price, then desc, then unit; a header matching none is ignored.
func classify(header string) columnRole {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "price"):
		return rolePrice
	case strings.Contains(h, "desc"):
		return roleDesc
	case strings.Contains(h, "unit"):
		return roleUnit
	default:
		return roleNone
	}
}

// Normalize converts a raw table into catalog items, one per row, row order
// preserved. The first column is always the item name. When several columns
// classify to the same field, the last one wins. A price cell that fails to
// parse leaves the price at its previous value; rows are never dropped.
func Normalize(headers []string, rows [][]string) []Item {
	roles := make([]columnRole, len(headers))
	for i, h := range headers {
		roles[i] = classify(h)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		it := Item{Unit: DefaultUnit}
		if len(row) > 0 {
			it.Name = strings.TrimSpace(row[0])
		}
		for i, cell := range row {
			if i >= len(roles) {
				break
			}
			switch roles[i] {
			case rolePrice:
				if p, ok := parsePrice(cell); ok {
					it.UnitPrice = p
				}
			case roleUnit:
				it.Unit = cell
			case roleDesc:
				it.Description = cell
			}
		}
		items = append(items, it)
	}
	return items
}

// parsePrice reads a decimal out of a messy price cell: thousands separators
// stripped, only the first whitespace-delimited token considered, so values
// like "1,250.00 KES" parse as 1250.
func parsePrice(cell string) (decimal.Decimal, bool) {
	fields := strings.Fields(strings.ReplaceAll(cell, ",", ""))
	if len(fields) == 0 {
		return decimal.Decimal{}, false
	}
	p, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return p, true
}
