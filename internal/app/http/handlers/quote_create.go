package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"smart-global/quotation_backend/internal/domain/quote"
)

type CreateQuoteRequest struct {
	QuoteNo    string `json:"quote_no"`
	Date       string `json:"date"`
	ValidUntil string `json:"valid_until"`
	Currency   string `json:"currency"`
	Customer   struct {
		Name    string `json:"name"`
		Company string `json:"company"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
	} `json:"customer"`
	Items []struct {
		Name  string          `json:"name"`
		Unit  string          `json:"unit"`
		Qty   decimal.Decimal `json:"qty"`
		Price decimal.Decimal `json:"price"`
	} `json:"items"`
	Notes string `json:"notes"`
}

// CreateQuote renders the supplied quotation as a PDF. Totals are always
// recomputed server-side; a single malformed item value fails the request.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}

	q := quote.Quotation{
		Number:     req.QuoteNo,
		IssueDate:  req.Date,
		ValidUntil: req.ValidUntil,
		Currency:   req.Currency,
		Customer: quote.Customer{
			Name:    req.Customer.Name,
			Company: req.Customer.Company,
			Address: req.Customer.Address,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
		},
		Notes: req.Notes,
	}
	for _, it := range req.Items {
		q.Lines = append(q.Lines, quote.Line{
			Name:      it.Name,
			Unit:      it.Unit,
			Qty:       it.Qty,
			UnitPrice: it.Price,
		})
	}

	if err := q.Validate(); err != nil {
		writeError(w, err)
		return
	}

	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="Quotation_%s.pdf"`, q.Number))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
