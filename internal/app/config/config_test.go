package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustLoadDefaults(t *testing.T) {
	cfg := MustLoad()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 0.16, cfg.TaxRate)
	assert.Equal(t, "Smart Global Trading Ltd", cfg.Issuer.Name)
	assert.NotEmpty(t, cfg.Issuer.Email)
}

func TestMustLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("COMPANY_NAME", "Other Traders")

	cfg := MustLoad()
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 0.2, cfg.TaxRate)
	assert.Equal(t, "Other Traders", cfg.Issuer.Name)
}
