package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err, "la carga con defaults no debe fallar")

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "receiptsWithItems", cfg.Excel.Sheet)
	assert.Equal(t, "CustomerNumber", cfg.Excel.Columns.CustomerNumber)
	assert.Equal(t, "Raw Whole Milk", cfg.Scheme.Product)
	assert.Equal(t, 27.5, cfg.Scheme.Price500MLDiscounted)
	assert.Equal(t, "Rs.", cfg.Receipt.Currency)
	assert.Contains(t, cfg.PaymentModes, "UPI / BHIM")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EntornoSobreescribe(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EXCEL_SHEET", "ventas")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port, "la variable de entorno debe tener prioridad")
	assert.Equal(t, "ventas", cfg.Excel.Sheet)
}
