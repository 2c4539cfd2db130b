package quote

import "github.com/shopspring/decimal"

// Quotation is one fully specified price offer. It lives only for the
// duration of a single render call.
type Quotation struct {
	Number     string `validate:"required"`
	IssueDate  string `validate:"required"`
	ValidUntil string
	Currency   string `validate:"required"`
	Customer   Customer
	Lines      []Line
	Notes      string
}

type Customer struct {
	Name    string `validate:"required"`
	Company string
	Address string
	Phone   string
	Email   string
}

// Line is one priced row of the quotation. Quantity and price are taken
// as supplied; negative values pass through the arithmetic unchanged.
type Line struct {
	Name      string
	Unit      string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
}

// Total is this line's extended amount.
func (l Line) Total() decimal.Decimal {
	return l.Qty.Mul(l.UnitPrice)
}

// Issuer is the static seller identity printed on every document.
type Issuer struct {
	Name    string
	Contact string
	Address string
	POBox   string
	Mobile  string
	Tel     string
	Email   string
	Web     string
}
