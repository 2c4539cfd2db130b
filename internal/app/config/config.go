package config

import (
	"log"
	"os"
	"strconv"

	"smart-global/quotation_backend/internal/domain/quote"
)

type Config struct {
	HTTPAddr        string
	CORSAllowOrigin string
	TaxRate         float64
	LogoPath        string
	ItemsPath       string
	Issuer          quote.Issuer
}

func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		TaxRate:         envFloat("TAX_RATE", 0.16),
		LogoPath:        env("LOGO_PATH", "smart_logo.jpg"),
		ItemsPath:       env("ITEMS_PATH", "items.csv"),
		Issuer: quote.Issuer{
			Name:    env("COMPANY_NAME", "Smart Global Trading Ltd"),
			Contact: env("COMPANY_CONTACT", "Ahmed Roushdy – Sales Manager"),
			Address: env("COMPANY_ADDRESS", "Muungano House, Argwing Khodek Road, Hurlingham"),
			POBox:   env("COMPANY_POBOX", "P.O. Box 66628-00800, Nairobi, Kenya"),
			Mobile:  env("COMPANY_MOBILE", "+254 719 593252 / +254 722 206043"),
			Tel:     env("COMPANY_TEL", "+254 20 3500426 / +254 773 333430"),
			Email:   env("COMPANY_EMAIL", "ahmed@smarthotelsupplies.com"),
			Web:     env("COMPANY_WEB", "www.smarthotelsupplies.com"),
		},
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("bad env %s=%q: %v", k, v, err)
	}
	return f
}
