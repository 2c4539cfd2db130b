package app

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"smart-global/quotation_backend/internal/app/config"
	apphttp "smart-global/quotation_backend/internal/app/http"
	"smart-global/quotation_backend/internal/domain/catalog"
	pdfgen "smart-global/quotation_backend/internal/domain/quote/pdf/gofpdf"
	"smart-global/quotation_backend/internal/infra/spreadsheet"
)

func Run() {
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.MustLoad()

	store := catalog.NewStore()
	preloadItems(store, cfg.ItemsPath)

	gen := pdfgen.New(cfg.Issuer, decimal.NewFromFloat(cfg.TaxRate), cfg.LogoPath)

	router := apphttp.NewRouter(cfg, store, gen)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

// preloadItems seeds the catalog from a local price list when one is
// present. Absence is not an error.
func preloadItems(store *catalog.Store, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	headers, rows, err := spreadsheet.Read(data, path)
	if err != nil {
		log.Printf("default items %s: %v", path, err)
		return
	}
	items := catalog.Normalize(headers, rows)
	store.Replace(items)
	log.Printf("default items loaded from %s: %d items", path, len(items))
}
