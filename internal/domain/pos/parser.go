package pos

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// Gramática de las descripciones del POS:
//
//	Item:     "<producto> (<cantidad> X <tarifa>)"   ej. "Raw Whole Milk (2 X 60)"
//	Discount: un monto entero entre paréntesis        ej. "Loyalty (10)"
//
// La "X" separadora es literal y sensible a mayúsculas. Todo lo que no
// encaje degrada a "sin aporte": la línea se lista igual pero con
// Valid == false, nunca se aborta el lote por una descripción rota.
var (
	productPattern  = regexp.MustCompile(`^(.*?)\s*\(`)
	qtyRatePattern  = regexp.MustCompile(`\(([0-9.]+)\s*X\s*([0-9.]+)\)`)
	discountPattern = regexp.MustCompile(`\((\d+)\)`)
)

// ParseEntry decodifica la descripción libre de un asiento en una línea del
// estado de cuenta, según su EntryType.
func ParseEntry(entryType string, entryName entity.CellValue, date time.Time) entity.LineItem {
	text := entryName.String()
	switch entryType {
	case entity.EntryKindDiscount:
		return parseDiscount(text, date)
	default:
		return parseItem(entryType, text, date)
	}
}

func parseItem(entryType, text string, date time.Time) entity.LineItem {
	line := entity.LineItem{Kind: entryType, Date: date}
	if strings.TrimSpace(text) == "" {
		return line
	}

	if m := productPattern.FindStringSubmatch(text); m != nil {
		line.Product = strings.TrimSpace(m[1])
	} else {
		// Sin paréntesis: todo el texto es el producto, sin cantidad ni tarifa.
		line.Product = strings.TrimSpace(text)
	}

	m := qtyRatePattern.FindStringSubmatch(text)
	if m == nil {
		return line
	}
	qty, err1 := decimal.NewFromString(m[1])
	rate, err2 := decimal.NewFromString(m[2])
	if err1 != nil || err2 != nil {
		return line
	}
	line.Quantity = qty
	line.Rate = rate
	line.Valid = true
	return line
}

func parseDiscount(text string, date time.Time) entity.LineItem {
	line := entity.LineItem{Kind: entity.EntryKindDiscount, Date: date}
	m := discountPattern.FindStringSubmatch(text)
	if m == nil {
		return line
	}
	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return line
	}
	line.Discount = amount
	line.Valid = true
	return line
}
