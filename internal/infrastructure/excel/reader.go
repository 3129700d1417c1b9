// Package excel implementa la ingesta del export POS desde un libro xlsx.
// Los valores se leen crudos (sin formato de celda): las fechas llegan como
// serial de Excel y los teléfonos como número, y es la capa de dominio la
// que decide cómo interpretarlos.
package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// Mapping indica en qué hoja viven las transacciones y qué cabecera tiene
// cada campo. Los POS exportan con nombres de columna distintos; el mapeo
// es configurable y estos son los defaults del export soportado.
type Mapping struct {
	Sheet          string
	ReceiptID      string
	Date           string
	Cashier        string
	CustomerName   string
	CustomerNumber string
	EntryType      string
	EntryName      string
	PaymentMode    string
}

// DefaultMapping mapeo del export POS de referencia.
func DefaultMapping() Mapping {
	return Mapping{
		Sheet:          "receiptsWithItems",
		ReceiptID:      "ReceiptId",
		Date:           "Date",
		Cashier:        "Cashier",
		CustomerName:   "CustomerName",
		CustomerNumber: "CustomerNumber",
		EntryType:      "EntryType",
		EntryName:      "EntryName",
		PaymentMode:    "PaymentMode",
	}
}

// Reader implementa receipts.RowSource sobre excelize.
type Reader struct {
	mapping Mapping
}

// NewReader construye el lector con el mapeo de columnas dado.
func NewReader(mapping Mapping) *Reader {
	return &Reader{mapping: mapping}
}

// Read parsea la hoja de transacciones del libro. Si el libro no es un xlsx
// legible, la hoja no existe o falta alguna columna mapeada, el error es
// fatal para el upload completo: no se devuelve tabla parcial.
func (r *Reader) Read(content []byte) ([]entity.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: abrir libro: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(r.mapping.Sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrSheetNotFound, r.mapping.Sheet)
	}

	rows, err := f.GetRows(r.mapping.Sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: leer filas de %q: %w", r.mapping.Sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: la hoja %q está vacía", domain.ErrMissingColumns, r.mapping.Sheet)
	}

	cols, err := r.resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]entity.Row, 0, len(rows)-1)
	for i, raw := range rows[1:] {
		out = append(out, entity.Row{
			ReceiptID:      cellAt(raw, cols.receiptID),
			Date:           cellAt(raw, cols.date),
			Cashier:        cellAt(raw, cols.cashier),
			CustomerName:   cellAt(raw, cols.customerName),
			CustomerNumber: cellAt(raw, cols.customerNumber),
			EntryType:      cellAt(raw, cols.entryType),
			EntryName:      cellAt(raw, cols.entryName),
			PaymentMode:    cellAt(raw, cols.paymentMode),
			SourceIndex:    i + 2, // fila 1 es la cabecera
		})
	}
	return out, nil
}

type columnIndexes struct {
	receiptID      int
	date           int
	cashier        int
	customerName   int
	customerNumber int
	entryType      int
	entryName      int
	paymentMode    int
}

// resolveColumns localiza cada columna mapeada en la fila de cabecera.
func (r *Reader) resolveColumns(header []string) (columnIndexes, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(h)] = i
	}

	cols := columnIndexes{}
	var missing []string
	resolve := func(name string, dst *int) {
		if i, ok := byName[name]; ok {
			*dst = i
			return
		}
		missing = append(missing, name)
	}
	resolve(r.mapping.ReceiptID, &cols.receiptID)
	resolve(r.mapping.Date, &cols.date)
	resolve(r.mapping.Cashier, &cols.cashier)
	resolve(r.mapping.CustomerName, &cols.customerName)
	resolve(r.mapping.CustomerNumber, &cols.customerNumber)
	resolve(r.mapping.EntryType, &cols.entryType)
	resolve(r.mapping.EntryName, &cols.entryName)
	resolve(r.mapping.PaymentMode, &cols.paymentMode)

	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}

// cellAt devuelve la celda en la posición dada; las filas cortas de excelize
// omiten las celdas finales vacías.
func cellAt(raw []string, i int) entity.CellValue {
	if i >= len(raw) {
		return entity.Blank()
	}
	return entity.Cell(raw[i])
}
