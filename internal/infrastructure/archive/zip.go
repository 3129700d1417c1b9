// Package archive empaqueta los PDFs generados en un único ZIP en memoria.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
)

// ZipArchiver implementa receipts.Archiver con archive/zip.
type ZipArchiver struct{}

// NewZipArchiver construye el empaquetador.
func NewZipArchiver() *ZipArchiver { return &ZipArchiver{} }

// Bundle escribe los archivos en un ZIP, en el orden dado, y devuelve sus
// bytes listos para descargar.
func (a *ZipArchiver) Bundle(files []receipts.File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("zip: crear entrada %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Content); err != nil {
			return nil, fmt.Errorf("zip: escribir %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}
