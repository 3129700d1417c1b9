package archive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/archive"
)

func TestBundle_RoundTrip(t *testing.T) {
	files := []receipts.File{
		{Name: "Asha - 01-06-2024 to 30-06-2024.pdf", Content: []byte("pdf-asha")},
		{Name: "Ravi - 01-06-2024 to 30-06-2024.pdf", Content: []byte("pdf-ravi")},
	}

	got, err := archive.NewZipArchiver().Bundle(files)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(got), int64(len(got)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	// El orden de entrada se preserva.
	assert.Equal(t, files[0].Name, zr.File[0].Name)
	assert.Equal(t, files[1].Name, zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-asha"), content)
}

func TestBundle_SinArchivos(t *testing.T) {
	got, err := archive.NewZipArchiver().Bundle(nil)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(got), int64(len(got)))
	require.NoError(t, err)
	assert.Empty(t, zr.File, "un ZIP vacío sigue siendo un ZIP válido")
}
