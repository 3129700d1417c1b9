package entity

// Kinds de asiento facturables del POS. El export trae además filas de
// cabecera y de totales con otros EntryType; esas nunca se facturan.
const (
	EntryKindItem     = "Item"
	EntryKindDiscount = "Discount"
)

// PaymentModeAll valor del filtro de canal de pago que no excluye ninguna fila.
const PaymentModeAll = "All"

// Row es una fila del export tabular del POS (hoja receiptsWithItems).
// El POS solo escribe ReceiptID, Date, Cashier, CustomerName, CustomerNumber
// y PaymentMode en la primera línea de cada recibo; las líneas siguientes
// llegan en blanco y heredan el último valor explícito (carry-forward).
// EntryType y EntryName nunca se heredan.
type Row struct {
	ReceiptID      CellValue
	Date           CellValue
	Cashier        CellValue
	CustomerName   CellValue
	CustomerNumber CellValue
	EntryType      CellValue
	EntryName      CellValue
	PaymentMode    CellValue

	// SourceIndex posición de la fila en la hoja origen (para trazabilidad).
	SourceIndex int
}

// IsBlank indica si todos los campos de la fila están en blanco.
func (r Row) IsBlank() bool {
	return r.ReceiptID.IsBlank() &&
		r.Date.IsBlank() &&
		r.Cashier.IsBlank() &&
		r.CustomerName.IsBlank() &&
		r.CustomerNumber.IsBlank() &&
		r.EntryType.IsBlank() &&
		r.EntryName.IsBlank() &&
		r.PaymentMode.IsBlank()
}
