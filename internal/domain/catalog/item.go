package catalog

import "github.com/shopspring/decimal"

// DefaultUnit is used when the source table carries no unit column.
const DefaultUnit = "Piece"

// Item is one priced catalog entry built from a single price-list row.
type Item struct {
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Description string          `json:"desc"`
}
