package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-global/quotation_backend/internal/app/config"
	"smart-global/quotation_backend/internal/domain/catalog"
	pdfgen "smart-global/quotation_backend/internal/domain/quote/pdf/gofpdf"
)

func testHandlers() *Handlers {
	cfg := config.Config{
		TaxRate: 0.16,
		Issuer:  config.MustLoad().Issuer,
	}
	gen := pdfgen.New(cfg.Issuer, decimal.NewFromFloat(cfg.TaxRate), "")
	return New(catalog.NewStore(), gen, cfg)
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestUploadItemsReplacesCatalog(t *testing.T) {
	h := testHandlers()
	h.Catalog.Replace([]catalog.Item{{Name: "stale"}})

	csvData := []byte("Item,Unit Price,Unit,Description\nBath Towel,\"1,250.00\",Piece,White cotton\nSoap,N/A,Box,Guest size\n")
	body, contentType := multipartUpload(t, "file", "pricelist.csv", csvData)

	req := httptest.NewRequest(http.MethodPost, "/v1/items/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Count int            `json:"count"`
		Items []catalog.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "Bath Towel", resp.Items[0].Name)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.NewFromInt(1250)))
	assert.True(t, resp.Items[1].UnitPrice.IsZero(), "bad price defaults, row kept")

	assert.Equal(t, 2, h.Catalog.Len(), "previous catalog fully replaced")
}

func TestUploadItemsUnsupportedType(t *testing.T) {
	h := testHandlers()
	body, contentType := multipartUpload(t, "file", "pricelist.docx", []byte("nope"))

	req := httptest.NewRequest(http.MethodPost, "/v1/items/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadItems(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestUploadItemsNoFile(t *testing.T) {
	h := testHandlers()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/items/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	h.UploadItems(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListItemsEmptyCatalog(t *testing.T) {
	h := testHandlers()
	req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
	rec := httptest.NewRecorder()
	h.ListItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateQuoteReturnsPDF(t *testing.T) {
	h := testHandlers()
	payload := `{
		"quote_no": "SG-042",
		"date": "2026-09-01",
		"valid_until": "2026-10-01",
		"currency": "KES",
		"customer": {"name": "Acme Hotels", "address": "Mombasa Road"},
		"items": [
			{"name": "Bath Towel", "unit": "Piece", "qty": 2, "price": 100},
			{"name": "Soap", "unit": "Box", "qty": 1, "price": 50}
		],
		"notes": "Delivery within 14 days."
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.CreateQuote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Quotation_SG-042.pdf"`,
		rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestCreateQuoteMissingCustomerName(t *testing.T) {
	h := testHandlers()
	payload := `{"quote_no": "SG-042", "date": "2026-09-01", "currency": "KES", "items": []}`

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.CreateQuote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer.name")
}

func TestCreateQuoteNonNumericQuantity(t *testing.T) {
	h := testHandlers()
	payload := `{
		"quote_no": "SG-042",
		"date": "2026-09-01",
		"currency": "KES",
		"customer": {"name": "Acme Hotels"},
		"items": [{"name": "Towel", "unit": "Piece", "qty": "two", "price": 100}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.CreateQuote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code,
		"a malformed line value fails the whole render")
}

func TestCreateQuoteBadJSON(t *testing.T) {
	h := testHandlers()
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.CreateQuote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
