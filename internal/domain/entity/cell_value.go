package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind clasifica el contenido de una celda del export POS.
type CellKind int

const (
	CellBlank CellKind = iota
	CellNumber
	CellText
)

// CellValue es el valor de una celda en la frontera de ingesta.
// Los exports de hojas de cálculo mezclan tipos sin aviso: teléfonos que
// llegan como número en notación científica, fechas como serial de Excel o
// como texto. CellValue hace explícita esa variante para que las rutinas de
// normalización sean funciones totales en lugar de coerciones al vuelo.
type CellValue struct {
	Kind   CellKind
	Number decimal.Decimal // válido solo si Kind == CellNumber
	Text   string          // válido solo si Kind == CellText
}

// Blank celda vacía.
func Blank() CellValue { return CellValue{Kind: CellBlank} }

// Number celda numérica (número nativo de la hoja).
func Number(d decimal.Decimal) CellValue {
	return CellValue{Kind: CellNumber, Number: d}
}

// Text celda de texto. Un texto compuesto solo de espacios se trata como
// blanco en IsBlank, pero se conserva tal cual.
func Text(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// Cell interpreta un valor crudo de la hoja: vacío → blanco, numérico →
// número, cualquier otra cosa → texto.
func Cell(raw string) CellValue {
	if strings.TrimSpace(raw) == "" {
		return Blank()
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(raw)); err == nil {
		return Number(d)
	}
	return Text(raw)
}

// IsBlank indica si la celda está vacía (o contiene solo espacios).
func (v CellValue) IsBlank() bool {
	switch v.Kind {
	case CellBlank:
		return true
	case CellText:
		return strings.TrimSpace(v.Text) == ""
	default:
		return false
	}
}

// String devuelve la representación textual de la celda. Los números se
// imprimen en decimal plano (sin notación científica).
func (v CellValue) String() string {
	switch v.Kind {
	case CellNumber:
		return v.Number.String()
	case CellText:
		return v.Text
	default:
		return ""
	}
}
