package pos

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// dateLayouts formatos de fecha en texto observados en exports POS, probados
// en orden.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2-Jan-2006",
	"2-Jan-06",
	time.RFC3339,
}

// ParseDate interpreta la celda de fecha del export. Es una función total:
// una celda numérica se trata como serial de Excel, una de texto se prueba
// contra los formatos conocidos, y cualquier otra cosa devuelve ok == false.
// Las filas con fecha no interpretable se excluyen del filtrado, nunca son
// un error.
func ParseDate(v entity.CellValue) (time.Time, bool) {
	switch v.Kind {
	case entity.CellNumber:
		serial, _ := v.Number.Float64()
		if serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true

	case entity.CellText:
		text := strings.TrimSpace(v.Text)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
