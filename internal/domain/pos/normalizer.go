// Package pos contiene el núcleo del pipeline de facturación: normalización
// del export tabular del POS, resolución de identidades de cliente, filtrado
// de transacciones, decodificación de líneas y aplicación del scheme
// promocional. Todas las etapas son funciones puras sobre sus entradas; el
// único estado de proceso es la configuración del scheme, cargada una vez y
// de solo lectura.
package pos

import "github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"

// Normalize reconstruye los campos omitidos del export aplicando
// carry-forward: para cada campo heredable se recuerda el último valor no
// blanco visto al recorrer las filas en orden, y las celdas en blanco se
// rellenan con ese valor. Un campo en blanco antes de su primer valor
// explícito queda en blanco (estado terminal válido, no error). EntryType y
// EntryName nunca se heredan. Tras rellenar, las filas completamente en
// blanco se descartan.
//
// La operación preserva el orden origen y es idempotente: normalizar una
// tabla ya rellena no la modifica.
func Normalize(rows []entity.Row) []entity.Row {
	var last struct {
		receiptID      entity.CellValue
		date           entity.CellValue
		cashier        entity.CellValue
		customerName   entity.CellValue
		customerNumber entity.CellValue
		paymentMode    entity.CellValue
	}
	last.receiptID = entity.Blank()
	last.date = entity.Blank()
	last.cashier = entity.Blank()
	last.customerName = entity.Blank()
	last.customerNumber = entity.Blank()
	last.paymentMode = entity.Blank()

	out := make([]entity.Row, 0, len(rows))
	for _, r := range rows {
		fill(&r.ReceiptID, &last.receiptID)
		fill(&r.Date, &last.date)
		fill(&r.Cashier, &last.cashier)
		fill(&r.CustomerName, &last.customerName)
		fill(&r.CustomerNumber, &last.customerNumber)
		fill(&r.PaymentMode, &last.paymentMode)

		if r.IsBlank() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// fill rellena *cell con *seen si está en blanco; si no, actualiza *seen.
func fill(cell, seen *entity.CellValue) {
	if cell.IsBlank() {
		*cell = *seen
		return
	}
	*seen = *cell
}
