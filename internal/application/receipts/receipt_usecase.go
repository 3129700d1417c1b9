package receipts

import (
	"context"
	"fmt"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/pos"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/logger"
)

// ReceiptUseCase calcula estados de cuenta y genera los documentos PDF de un
// lote de clientes seleccionados.
type ReceiptUseCase struct {
	store    UploadStore
	renderer ReceiptRenderer
	archiver Archiver
	scheme   pos.Scheme
	log      *logger.Logger
}

// NewReceiptUseCase construye el caso de uso; scheme es la configuración
// promocional de la sesión (solo lectura).
func NewReceiptUseCase(
	store UploadStore,
	renderer ReceiptRenderer,
	archiver Archiver,
	scheme pos.Scheme,
	log *logger.Logger,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		store:    store,
		renderer: renderer,
		archiver: archiver,
		scheme:   scheme,
		log:      log,
	}
}

// Document un PDF generado para un cliente.
type Document struct {
	Customer entity.CustomerIdentity
	File     File
}

// BatchResult resultado de un lote de generación. Skipped lista los clientes
// seleccionados sin transacciones en los filtros dados (se reportan al
// operador, nunca abortan a los demás). Zip solo se arma cuando hay dos o
// más documentos.
type BatchResult struct {
	Documents []Document
	Skipped   []entity.CustomerIdentity
	ZipName   string
	Zip       []byte
}

// Statement calcula el estado de cuenta de un cliente sin renderizar el
// documento (vista previa). Un resultado sin líneas es válido: significa que
// ningún asiento cayó en los filtros.
func (uc *ReceiptUseCase) Statement(
	_ context.Context,
	uploadID, phone string,
	dateRange entity.DateRange,
	paymentMode string,
	applyScheme bool,
) (*entity.BillingResult, error) {
	up, err := uc.store.Get(uploadID)
	if err != nil {
		return nil, fmt.Errorf("estado de cuenta: obtener upload %s: %w", uploadID, err)
	}
	customer, ok := lookupCustomer(up.Rows, phone, paymentMode)
	if !ok {
		return nil, fmt.Errorf("estado de cuenta: cliente %s: %w", phone, domain.ErrNotFound)
	}
	result := pos.ComputeBilling(up.Rows, customer, paymentMode, dateRange, applyScheme, uc.scheme)
	return &result, nil
}

// GenerateBatch genera un PDF por cliente seleccionado, en el orden de la
// selección (listados de archivos reproducibles). Cada cliente se computa de
// forma independiente sobre la misma tabla de solo lectura; un cliente sin
// transacciones se salta y se reporta. Cancelar el contexto entre clientes
// deja válidos los documentos ya producidos.
func (uc *ReceiptUseCase) GenerateBatch(
	ctx context.Context,
	uploadID string,
	selection entity.SelectionSet,
	dateRange entity.DateRange,
	paymentMode string,
) (*BatchResult, error) {
	if selection.IsEmpty() {
		return nil, domain.ErrEmptySelection
	}
	up, err := uc.store.Get(uploadID)
	if err != nil {
		return nil, fmt.Errorf("generación: obtener upload %s: %w", uploadID, err)
	}

	byPhone := customersByPhone(up.Rows, paymentMode)
	batch := &BatchResult{}

	for _, sel := range selection.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generación cancelada: %w", err)
		}

		customer, ok := byPhone[sel.Phone]
		if !ok {
			customer = entity.CustomerIdentity{Phone: sel.Phone}
		}
		result := pos.ComputeBilling(up.Rows, customer, paymentMode, dateRange, sel.ApplyScheme, uc.scheme)
		if result.IsEmpty() {
			batch.Skipped = append(batch.Skipped, customer)
			uc.log.Warn().
				Str("cliente", customer.Name).
				Str("telefono", customer.Phone).
				Msg("cliente sin transacciones en el rango; documento omitido")
			continue
		}

		content, err := uc.renderer.Render(ctx, &result)
		if err != nil {
			return nil, fmt.Errorf("generación: renderizar %s: %w", customer.Name, err)
		}
		batch.Documents = append(batch.Documents, Document{
			Customer: customer,
			File: File{
				Name:    fmt.Sprintf("%s - %s.pdf", customer.Name, dateRange.Label()),
				Content: content,
			},
		})
	}

	if len(batch.Documents) > 1 {
		files := make([]File, 0, len(batch.Documents))
		for _, d := range batch.Documents {
			files = append(files, d.File)
		}
		zipBytes, err := uc.archiver.Bundle(files)
		if err != nil {
			return nil, fmt.Errorf("generación: empaquetar ZIP: %w", err)
		}
		batch.ZipName = fmt.Sprintf("receipts_%s.zip", dateRange.Compact())
		batch.Zip = zipBytes
	}

	uc.log.Info().
		Int("documentos", len(batch.Documents)).
		Int("omitidos", len(batch.Skipped)).
		Msg("lote de estados de cuenta generado")
	return batch, nil
}

// lookupCustomer resuelve la identidad mostrada de un teléfono canónico.
func lookupCustomer(rows []entity.Row, phone, paymentMode string) (entity.CustomerIdentity, bool) {
	c, ok := customersByPhone(rows, paymentMode)[phone]
	return c, ok
}

// customersByPhone indexa las identidades por teléfono canónico. Ante
// variantes de nombre con el mismo teléfono gana la primera en orden
// alfabético, que es la que ve el operador en el listado.
func customersByPhone(rows []entity.Row, paymentMode string) map[string]entity.CustomerIdentity {
	out := make(map[string]entity.CustomerIdentity)
	for _, c := range pos.Customers(rows, paymentMode) {
		if _, dup := out[c.Phone]; !dup {
			out[c.Phone] = c
		}
	}
	return out
}
