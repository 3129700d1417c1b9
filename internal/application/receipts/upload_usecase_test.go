package receipts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

type fakeRowSource struct {
	rows []entity.Row
	err  error
}

func (s *fakeRowSource) Read(_ []byte) ([]entity.Row, error) {
	return s.rows, s.err
}

// La ingesta normaliza la tabla antes de almacenarla: los campos heredables
// de las líneas siguientes del recibo ya llegan rellenos a los consumidores.
func TestIngest_NormalizaYAlmacena(t *testing.T) {
	source := &fakeRowSource{rows: []entity.Row{
		testRow("2024-06-01", "Asha", "9876543210", "Item", "Raw Whole Milk (1 X 60)", "Cash"),
		{
			EntryType: entity.Cell("Discount"),
			EntryName: entity.Cell("Loyalty (10)"),
		},
	}}
	store := newFakeStore()
	uc := receipts.NewUploadUseCase(source, store, testLogger())

	up, err := uc.Ingest(context.Background(), "pos.xlsx", []byte("xlsx"))
	require.NoError(t, err)
	require.NotEmpty(t, up.ID)

	stored, err := store.Get(up.ID)
	require.NoError(t, err)
	require.Len(t, stored.Rows, 2)
	assert.Equal(t, "Asha", stored.Rows[1].CustomerName.String(),
		"la segunda línea del recibo hereda el nombre del cliente")
}

// Un libro ilegible es fatal para el upload: no se almacena tabla parcial.
func TestIngest_LibroInvalidoNoAlmacenaNada(t *testing.T) {
	source := &fakeRowSource{err: domain.ErrSheetNotFound}
	store := newFakeStore()
	uc := receipts.NewUploadUseCase(source, store, testLogger())

	_, err := uc.Ingest(context.Background(), "roto.xlsx", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrSheetNotFound)
	assert.Empty(t, store.uploads)
}

func TestDiscard(t *testing.T) {
	store := newFakeStore()
	id := seedUpload(store)
	uc := receipts.NewUploadUseCase(&fakeRowSource{}, store, testLogger())

	require.NoError(t, uc.Discard(context.Background(), id))
	assert.ErrorIs(t, uc.Discard(context.Background(), id), domain.ErrNotFound)
}
