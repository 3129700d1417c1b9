package receipts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/pos"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/logger"
)

// UploadUseCase ingesta un export POS: parsea la hoja, normaliza la tabla
// (carry-forward) y la retiene en memoria bajo un id nuevo.
type UploadUseCase struct {
	source RowSource
	store  UploadStore
	log    *logger.Logger
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(source RowSource, store UploadStore, log *logger.Logger) *UploadUseCase {
	return &UploadUseCase{source: source, store: store, log: log}
}

// Ingest procesa el contenido de un xlsx subido.
//
// Un libro sin la hoja esperada o sin las columnas mapeadas es fatal para el
// upload completo (domain.ErrSheetNotFound / domain.ErrMissingColumns): no
// se almacena ninguna tabla parcial.
func (uc *UploadUseCase) Ingest(_ context.Context, filename string, content []byte) (*Upload, error) {
	rows, err := uc.source.Read(content)
	if err != nil {
		return nil, fmt.Errorf("ingesta: leer %s: %w", filename, err)
	}

	up := &Upload{
		ID:        uuid.NewString(),
		Filename:  filename,
		Rows:      pos.Normalize(rows),
		CreatedAt: time.Now(),
	}
	uc.store.Put(up)

	uc.log.Info().
		Str("upload_id", up.ID).
		Str("archivo", filename).
		Int("filas", len(up.Rows)).
		Msg("export POS ingestado")
	return up, nil
}

// Discard libera un upload que ya no se necesita.
func (uc *UploadUseCase) Discard(_ context.Context, id string) error {
	return uc.store.Delete(id)
}
