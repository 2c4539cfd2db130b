package pdf

import "smart-global/quotation_backend/internal/domain/quote"

// Generator renders a quotation into a finished paginated document.
type Generator interface {
	Generate(q quote.Quotation) ([]byte, error)
}
