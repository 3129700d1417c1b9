package pos_test

import (
	"time"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests del pipeline
// ──────────────────────────────────────────────────────────────────────────────

// row construye una fila del export a partir de textos crudos; "" queda en
// blanco y los valores numéricos (teléfonos, seriales) se tipan como número,
// igual que hace la frontera de ingesta.
func row(receipt, date, cashier, name, number, entryType, entryName, mode string) entity.Row {
	return entity.Row{
		ReceiptID:      entity.Cell(receipt),
		Date:           entity.Cell(date),
		Cashier:        entity.Cell(cashier),
		CustomerName:   entity.Cell(name),
		CustomerNumber: entity.Cell(number),
		EntryType:      entity.Cell(entryType),
		EntryName:      entity.Cell(entryName),
		PaymentMode:    entity.Cell(mode),
	}
}

// entryRow fila facturable mínima (los campos que no influyen van fijos).
func entryRow(date, name, number, entryType, entryName, mode string) entity.Row {
	return row("R-1", date, "Asha Counter", name, number, entryType, entryName, mode)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rangeJune() entity.DateRange {
	return entity.NewDateRange(day(2024, time.June, 1), day(2024, time.June, 10))
}
