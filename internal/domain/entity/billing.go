package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem línea de un estado de cuenta, decodificada de una fila del POS.
//
// Para Kind == EntryKindItem con Valid == true: Product, Quantity, Rate y
// Amount están poblados (Amount = Quantity × tarifa efectiva). Para
// Kind == EntryKindDiscount con Valid == true: Discount está poblado y la
// línea resta del total. Una línea con Valid == false no pudo decodificarse
// según la gramática esperada: se lista igual pero no aporta al total.
type LineItem struct {
	Kind     string
	Date     time.Time
	Product  string
	Quantity decimal.Decimal
	Rate     decimal.Decimal
	Amount   decimal.Decimal
	Discount decimal.Decimal
	Valid    bool
}

// BillingResult estado de cuenta de un cliente para un rango de fechas.
// Se calcula fresco por combinación (cliente, rango, canal de pago, scheme)
// y vive solo mientras se renderiza el documento; nunca se persiste.
type BillingResult struct {
	Customer      CustomerIdentity
	PaymentMode   string
	Range         DateRange
	SchemeApplied bool
	Lines         []LineItem // en orden de fila origen
	Total         decimal.Decimal
}

// IsEmpty indica que ninguna transacción del cliente cayó en los filtros;
// el documento para ese cliente se omite y se reporta al operador.
func (b BillingResult) IsEmpty() bool { return len(b.Lines) == 0 }
