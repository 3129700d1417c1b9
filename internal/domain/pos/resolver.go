package pos

import (
	"sort"
	"strings"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// Customers deriva el listado de identidades de cliente de la tabla
// normalizada, deduplicado y ordenado por nombre (ascendente, ordinal
// sensible a mayúsculas; empates por teléfono).
//
// Se consideran solo filas con nombre y número presentes; si paymentMode es
// distinto de "All" (o vacío), solo filas con ese canal de pago exacto. El
// teléfono se canonicaliza con CanonicalPhone y el nombre se recorta; la
// deduplicación es por el par (nombre, teléfono): dos variantes de nombre
// con el mismo teléfono producen dos entradas. Filas cuyo teléfono no se
// pudo normalizar quedan fuera.
func Customers(rows []entity.Row, paymentMode string) []entity.CustomerIdentity {
	type key struct{ name, phone string }
	seen := make(map[key]bool)
	var out []entity.CustomerIdentity

	for _, r := range rows {
		if r.CustomerName.IsBlank() || r.CustomerNumber.IsBlank() {
			continue
		}
		if !matchesPaymentMode(r, paymentMode) {
			continue
		}
		phone := CanonicalPhone(r.CustomerNumber)
		if phone == "" {
			continue
		}
		name := strings.TrimSpace(r.CustomerName.String())
		k := key{name: name, phone: phone}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, entity.CustomerIdentity{Name: name, Phone: phone})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Phone < out[j].Phone
	})
	return out
}

// matchesPaymentMode aplica el filtro de canal de pago: "All" o vacío no
// excluye nada, cualquier otro valor exige igualdad exacta de strings.
func matchesPaymentMode(r entity.Row, paymentMode string) bool {
	if paymentMode == "" || paymentMode == entity.PaymentModeAll {
		return true
	}
	return r.PaymentMode.String() == paymentMode
}
