package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/memstore"
)

func TestUploadStore_CicloDeVida(t *testing.T) {
	store := memstore.NewUploadStore()
	store.Put(&receipts.Upload{ID: "u-1", Filename: "pos.xlsx"})

	got, err := store.Get("u-1")
	require.NoError(t, err)
	assert.Equal(t, "pos.xlsx", got.Filename)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete("u-1"))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get("u-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete("u-1"), domain.ErrNotFound)
}
