package handlers

import (
	"io"
	"log"
	"net/http"

	"smart-global/quotation_backend/internal/domain/catalog"
	"smart-global/quotation_backend/internal/infra/spreadsheet"
)

const maxUploadBytes = 5 << 20

type uploadItemsResponse struct {
	Count int            `json:"count"`
	Items []catalog.Item `json:"items"`
}

// ListItems returns the current catalog for the quote builder UI.
func (h *Handlers) ListItems(w http.ResponseWriter, r *http.Request) {
	items := h.Catalog.Items()
	if items == nil {
		items = []catalog.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// UploadItems ingests a price list and replaces the whole catalog with the
// normalized result.
func (h *Handlers) UploadItems(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, err)
		return
	}

	headers, rows, err := spreadsheet.Read(data, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	items := catalog.Normalize(headers, rows)
	h.Catalog.Replace(items)
	log.Printf("catalog replaced from %s: %d items", header.Filename, len(items))

	writeJSON(w, http.StatusOK, uploadItemsResponse{Count: len(items), Items: items})
}
