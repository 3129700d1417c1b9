package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/pdf"
)

func sampleResult() *entity.BillingResult {
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &entity.BillingResult{
		Customer:    entity.CustomerIdentity{Name: "Asha", Phone: "9876543210"},
		PaymentMode: "Cash",
		Range: entity.NewDateRange(day,
			time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)),
		Lines: []entity.LineItem{
			{
				Kind: entity.EntryKindItem, Date: day, Product: "Raw Whole Milk",
				Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(60),
				Amount: decimal.NewFromInt(120), Valid: true,
			},
			{
				Kind: entity.EntryKindDiscount, Date: day.AddDate(0, 0, 4),
				Discount: decimal.NewFromInt(10), Valid: true,
			},
			// Línea que no decodificó: se lista sin montos.
			{Kind: entity.EntryKindItem, Date: day, Product: "Mystery Item"},
		},
		Total: decimal.NewFromInt(110),
	}
}

func TestRender_ProduceUnPDF(t *testing.T) {
	r := pdf.NewMarotoReceiptRenderer(pdf.Options{
		Title:    "Customer Receipt",
		Currency: "Rs.",
		Footer:   "Thank you for trusting our pure and nutritious milk.",
		Scheme:   "Raw Whole Milk",
	})

	got, err := r.Render(context.Background(), sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "los bytes deben empezar con la firma PDF")
}

func TestRender_ConSchemeAplicado(t *testing.T) {
	r := pdf.NewMarotoReceiptRenderer(pdf.Options{Scheme: "Raw Whole Milk"})
	result := sampleResult()
	result.SchemeApplied = true

	got, err := r.Render(context.Background(), result)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestRender_EstadoDeCuentaVacio(t *testing.T) {
	r := pdf.NewMarotoReceiptRenderer(pdf.Options{})
	result := &entity.BillingResult{
		Customer: entity.CustomerIdentity{Name: "Asha", Phone: "9876543210"},
		Range: entity.NewDateRange(
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)),
		Total: decimal.Zero,
	}

	got, err := r.Render(context.Background(), result)
	require.NoError(t, err, "un resultado sin líneas igual debe renderizar")
	assert.NotEmpty(t, got)
}
