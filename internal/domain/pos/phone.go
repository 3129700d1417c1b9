package pos

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// Los exports de hoja de cálculo suelen renderizar números largos en
// notación científica ("9.87654321E9") o con decimales espurios
// ("9876543210.0"). La normalización prueba estrategias en orden y adopta la
// primera que tenga éxito: primero interpretación numérica (trunca a entero
// y lo imprime en decimal plano), después limpieza de dígidos del texto
// crudo. La misma rutina se aplica en todo lugar donde se compara un
// teléfono; divergencias entre resolución y filtrado romperían el lookup.

// phoneStrategy intenta normalizar un texto a teléfono canónico.
type phoneStrategy func(string) (string, bool)

var phoneStrategies = []phoneStrategy{
	phoneFromNumeric,
	phoneFromDigits,
}

// CanonicalPhone devuelve el teléfono en forma canónica (solo dígitos).
// Devuelve "" cuando ninguna estrategia produce dígitos; una identidad vacía
// nunca coincide con un cliente seleccionado y esas filas quedan fuera de
// los listados.
func CanonicalPhone(v entity.CellValue) string {
	switch v.Kind {
	case entity.CellBlank:
		return ""
	case entity.CellNumber:
		if s, ok := digitsFromDecimal(v.Number); ok {
			return s
		}
		return ""
	}

	text := strings.TrimSpace(v.Text)
	for _, strategy := range phoneStrategies {
		if s, ok := strategy(text); ok {
			return s
		}
	}
	return ""
}

// phoneFromNumeric interpreta el texto como número (admite notación
// científica y parte decimal) y lo trunca a entero.
func phoneFromNumeric(text string) (string, bool) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return "", false
	}
	return digitsFromDecimal(d)
}

// phoneFromDigits conserva únicamente los dígitos del texto crudo.
func phoneFromDigits(text string) (string, bool) {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

func digitsFromDecimal(d decimal.Decimal) (string, bool) {
	if d.IsNegative() {
		return "", false
	}
	return d.Truncate(0).String(), true
}
