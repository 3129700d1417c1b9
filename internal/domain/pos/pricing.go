package pos

import (
	"github.com/shopspring/decimal"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// Scheme sustitución promocional de precio: aplica a un único producto y
// solo en dos puntos de precio exactos (presentación de 1L y de 500ml). Se
// carga una vez de la configuración y es de solo lectura durante la sesión.
type Scheme struct {
	Product         string
	Original1L      decimal.Decimal
	Discounted1L    decimal.Decimal
	Original500ML   decimal.Decimal
	Discounted500ML decimal.Decimal
}

// EffectiveRate devuelve la tarifa unitaria efectiva de una línea. Con el
// toggle apagado, o si el producto no es el del scheme, la tarifa queda
// intacta. Con el toggle encendido y producto coincidente, solo una igualdad
// exacta con uno de los dos precios originales dispara la sustitución; no
// hay coincidencias parciales silenciosas.
func (s Scheme) EffectiveRate(product string, rate decimal.Decimal, apply bool) decimal.Decimal {
	if !apply || product != s.Product {
		return rate
	}
	if rate.Equal(s.Original1L) {
		return s.Discounted1L
	}
	if rate.Equal(s.Original500ML) {
		return s.Discounted500ML
	}
	return rate
}

// ComputeBilling arma el estado de cuenta de un cliente: filtra sus filas
// facturables, decodifica cada descripción y acumula el total en orden de
// fila origen (+monto por Item válido, −monto por Discount válido). Las
// líneas que no decodifican se listan con aporte cero.
//
// Es una función pura de la tabla normalizada; no retiene estado entre
// llamadas, así que los estados de cuenta de distintos clientes pueden
// calcularse de forma independiente sobre la misma tabla de solo lectura.
func ComputeBilling(
	rows []entity.Row,
	customer entity.CustomerIdentity,
	paymentMode string,
	dateRange entity.DateRange,
	applyScheme bool,
	scheme Scheme,
) entity.BillingResult {
	result := entity.BillingResult{
		Customer:      customer,
		PaymentMode:   paymentMode,
		Range:         dateRange,
		SchemeApplied: applyScheme,
		Total:         decimal.Zero,
	}

	for _, r := range FilterTransactions(rows, customer.Phone, dateRange, paymentMode) {
		when, _ := ParseDate(r.Date) // ya validada por el filtro
		line := ParseEntry(r.EntryType.String(), r.EntryName, when)

		if line.Valid {
			switch line.Kind {
			case entity.EntryKindDiscount:
				result.Total = result.Total.Sub(line.Discount)
			default:
				line.Rate = scheme.EffectiveRate(line.Product, line.Rate, applyScheme)
				line.Amount = line.Quantity.Mul(line.Rate)
				result.Total = result.Total.Add(line.Amount)
			}
		}
		result.Lines = append(result.Lines, line)
	}
	return result
}
