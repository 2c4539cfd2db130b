package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"smart-global/quotation_backend/internal/domain/quote"
	"smart-global/quotation_backend/internal/infra/spreadsheet"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}

// writeError maps caller mistakes to 400 with their message and everything
// else to a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		verr *quote.ValidationError
		perr *spreadsheet.ParseError
	)
	if errors.As(err, &verr) || errors.As(err, &perr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	log.Printf("internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
