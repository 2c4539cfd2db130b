package handlers

import (
	"smart-global/quotation_backend/internal/app/config"
	"smart-global/quotation_backend/internal/domain/catalog"
	"smart-global/quotation_backend/internal/domain/quote/pdf"
)

type Handlers struct {
	Catalog *catalog.Store
	PDF     pdf.Generator
	Cfg     config.Config
}

func New(store *catalog.Store, gen pdf.Generator, cfg config.Config) *Handlers {
	return &Handlers{
		Catalog: store,
		PDF:     gen,
		Cfg:     cfg,
	}
}
