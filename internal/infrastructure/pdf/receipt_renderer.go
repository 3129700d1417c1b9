// Package pdf renderiza el estado de cuenta de un cliente como PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Customer Receipt        │  Rango de fechas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Teléfono / Canal de pago                 │
//	│  (banner del scheme promocional, si aplica)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Date | Product | Qty | Rate | Amount                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL AMOUNT                                               │
//	│  Nota de agradecimiento                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Options textos fijos del documento, cargados de configuración.
type Options struct {
	Title    string // ej. "Customer Receipt"
	Currency string // símbolo antepuesto a tarifas y montos, ej. "Rs."
	Footer   string // nota de agradecimiento al pie
	Scheme   string // producto del scheme, para el banner
}

// MarotoReceiptRenderer implementa receipts.ReceiptRenderer usando Maroto v2.
type MarotoReceiptRenderer struct {
	opts Options
}

// NewMarotoReceiptRenderer construye el renderer.
func NewMarotoReceiptRenderer(opts Options) *MarotoReceiptRenderer {
	if opts.Title == "" {
		opts.Title = "Customer Receipt"
	}
	return &MarotoReceiptRenderer{opts: opts}
}

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptRenderer) Render(_ context.Context, result *entity.BillingResult) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.opts.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.customerRows(result)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableLineRows(result.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(result))

	if g.opts.Footer != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(g.opts.Footer, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas (der).
func (g *MarotoReceiptRenderer) headerRow(result *entity.BillingResult) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.opts.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Period", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(result.Range.Label(), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRows: datos del cliente y, si aplica, banner del scheme.
func (g *MarotoReceiptRenderer) customerRows(result *entity.BillingResult) []core.Row {
	rows := []core.Row{
		row.New(16).Add(col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(result.Customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(fmt.Sprintf("Phone: %s   |   Payment Mode: %s",
				result.Customer.Phone,
				nonEmpty(result.PaymentMode, entity.PaymentModeAll),
			), props.Text{Size: 8, Top: 13, Color: colorGray}),
		)),
	}

	if result.SchemeApplied {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Scheme applied: "+g.opts.Scheme, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Product", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableLineRows: una fila por línea del estado de cuenta. Los descuentos
// muestran monto negativo sin cantidad ni tarifa; las líneas que no
// decodificaron se listan sin montos.
func (g *MarotoReceiptRenderer) tableLineRows(lines []entity.LineItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}

	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		date := l.Date.Format("02-01-2006")
		switch {
		case l.Kind == entity.EntryKindDiscount && l.Valid:
			result = append(result, row.New(7).Add(
				cell(date, 2, align.Left),
				cell("Discount", 5, align.Left),
				cell("", 1, align.Center),
				cell("", 2, align.Right),
				cell("-"+g.money(l.Discount.StringFixed(2)), 2, align.Right),
			))
		case l.Valid:
			result = append(result, row.New(7).Add(
				cell(date, 2, align.Left),
				cell(l.Product, 5, align.Left),
				cell(l.Quantity.String(), 1, align.Center),
				cell(g.money(l.Rate.StringFixed(2)), 2, align.Right),
				cell(g.money(l.Amount.StringFixed(2)), 2, align.Right),
			))
		default:
			// Línea sin decodificar: se lista, sin aporte al total.
			result = append(result, row.New(7).Add(
				cell(date, 2, align.Left),
				cell(nonEmpty(l.Product, "(unreadable entry)"), 5, align.Left),
				cell("", 1, align.Center),
				cell("", 2, align.Right),
				cell("", 2, align.Right),
			))
		}
	}
	return result
}

// totalRow: total del estado de cuenta, alineado a la derecha.
func (g *MarotoReceiptRenderer) totalRow(result *entity.BillingResult) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New("TOTAL AMOUNT:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(g.money(result.Total.StringFixed(2)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoReceiptRenderer) money(s string) string {
	if g.opts.Currency == "" {
		return s
	}
	return g.opts.Currency + s
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
