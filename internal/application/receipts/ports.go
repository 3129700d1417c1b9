// Package receipts orquesta el pipeline de estados de cuenta: ingesta del
// export POS, listado de clientes seleccionables y generación de los
// documentos PDF (individuales o empaquetados en ZIP).
package receipts

import (
	"context"
	"time"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// RowSource lee la hoja de transacciones de un libro xlsx y la convierte en
// filas del dominio. Debe fallar con domain.ErrSheetNotFound o
// domain.ErrMissingColumns si el libro no trae la hoja o las columnas
// mapeadas; en ese caso no se usa ninguna tabla parcial.
type RowSource interface {
	Read(content []byte) ([]entity.Row, error)
}

// ReceiptRenderer produce el documento PDF de un estado de cuenta.
type ReceiptRenderer interface {
	Render(ctx context.Context, result *entity.BillingResult) ([]byte, error)
}

// File un archivo generado, listo para descargar o empaquetar.
type File struct {
	Name    string
	Content []byte
}

// Archiver empaqueta archivos en un único ZIP en memoria, preservando el
// orden dado.
type Archiver interface {
	Bundle(files []File) ([]byte, error)
}

// Upload una tabla POS cargada, ya normalizada, retenida en memoria mientras
// dura la sesión de trabajo. No hay capa de persistencia: reiniciar el
// proceso descarta los uploads.
type Upload struct {
	ID        string
	Filename  string
	Rows      []entity.Row // tabla normalizada, de solo lectura
	CreatedAt time.Time
}

// UploadStore retiene los uploads activos.
type UploadStore interface {
	Put(u *Upload)
	// Get devuelve domain.ErrNotFound si el upload no existe.
	Get(id string) (*Upload, error)
	Delete(id string) error
}
