package receipts

import (
	"context"
	"fmt"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/pos"
)

// CustomerUseCase lista las identidades de cliente seleccionables de un
// upload. El conjunto se recalcula en cada llamada porque depende del filtro
// de canal de pago activo.
type CustomerUseCase struct {
	store UploadStore
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store UploadStore) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// List devuelve los clientes del upload, deduplicados y ordenados por
// nombre; paymentMode "All" (o vacío) no restringe por canal.
func (uc *CustomerUseCase) List(_ context.Context, uploadID, paymentMode string) ([]entity.CustomerIdentity, error) {
	up, err := uc.store.Get(uploadID)
	if err != nil {
		return nil, fmt.Errorf("clientes: obtener upload %s: %w", uploadID, err)
	}
	return pos.Customers(up.Rows, paymentMode), nil
}
