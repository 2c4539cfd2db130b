package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smart-global/quotation_backend/internal/app/config"
	"smart-global/quotation_backend/internal/app/http/handlers"
	"smart-global/quotation_backend/internal/app/http/middleware"
	"smart-global/quotation_backend/internal/domain/catalog"
	"smart-global/quotation_backend/internal/domain/quote/pdf"
)

func NewRouter(cfg config.Config, store *catalog.Store, gen pdf.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(store, gen, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Post("/items/upload", h.UploadItems)
		r.Post("/quotes", h.CreateQuote)
	})

	return r
}
