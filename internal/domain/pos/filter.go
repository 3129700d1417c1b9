package pos

import (
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// FilterTransactions devuelve la subsecuencia ordenada de filas facturables
// de un cliente dentro del rango de fechas. Una fila entra si:
//
//   - su número normaliza exactamente al teléfono objetivo (misma rutina
//     CanonicalPhone que usa el listado de clientes),
//   - su fecha es interpretable y cae dentro del rango (extremo End
//     inclusivo hasta fin de día); fechas no interpretables excluyen la
//     fila sin error,
//   - pasa el filtro de canal de pago ("All" no excluye nada),
//   - su EntryType es "Item" o "Discount" (cabeceras, totales y demás kinds
//     no son facturables).
//
// El orden de fila origen se preserva.
func FilterTransactions(rows []entity.Row, phone string, dateRange entity.DateRange, paymentMode string) []entity.Row {
	if phone == "" {
		return nil
	}
	var out []entity.Row
	for _, r := range rows {
		if CanonicalPhone(r.CustomerNumber) != phone {
			continue
		}
		when, ok := ParseDate(r.Date)
		if !ok || !dateRange.Contains(when) {
			continue
		}
		if !matchesPaymentMode(r, paymentMode) {
			continue
		}
		switch r.EntryType.String() {
		case entity.EntryKindItem, entity.EntryKindDiscount:
			out = append(out, r)
		}
	}
	return out
}
