package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrSheetNotFound  = errors.New("hoja requerida no encontrada en el libro")
	ErrMissingColumns = errors.New("faltan columnas requeridas en la hoja")
	ErrNoTransactions = errors.New("sin transacciones para los filtros dados")
	ErrEmptySelection = errors.New("ningún cliente seleccionado")
)
