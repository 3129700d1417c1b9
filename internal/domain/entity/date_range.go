package entity

import "time"

// DateRange intervalo cerrado de fechas [Start, End]. El extremo End es
// inclusivo hasta el último instante de ese día calendario: una transacción
// a las 23:59:59 del día End entra, una a las 00:00:00 del día siguiente no.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange construye el rango a partir de dos fechas (se usan solo sus
// días calendario, en la zona horaria de Start).
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

// Contains indica si t cae dentro del rango.
func (r DateRange) Contains(t time.Time) bool {
	lo := startOfDay(r.Start)
	hi := startOfDay(r.End).Add(24 * time.Hour)
	return !t.Before(lo) && t.Before(hi)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Label devuelve el rango en formato legible dd-mm-yyyy, para títulos y
// nombres de archivo PDF.
func (r DateRange) Label() string {
	return r.Start.Format("02-01-2006") + " to " + r.End.Format("02-01-2006")
}

// Compact devuelve el rango en formato ddmmyyyy_to_ddmmyyyy, para el nombre
// del archivo ZIP.
func (r DateRange) Compact() string {
	return r.Start.Format("02012006") + "_to_" + r.End.Format("02012006")
}
