package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/dto"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// CustomerHandler lista los clientes seleccionables de un upload.
type CustomerHandler struct {
	uc *receipts.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *receipts.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List devuelve los clientes del upload, deduplicados y ordenados por nombre.
// El query param payment_mode restringe al canal de pago; "All" o ausente no
// restringe.
// GET /api/uploads/:id/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	paymentMode := c.Query("payment_mode", entity.PaymentModeAll)

	customers, err := h.uc.List(c.Context(), id, paymentMode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "upload no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	resp := dto.CustomerListResponse{
		PaymentMode: paymentMode,
		Customers:   make([]dto.CustomerResponse, 0, len(customers)),
		Total:       len(customers),
	}
	for _, cu := range customers {
		resp.Customers = append(resp.Customers, dto.CustomerResponse{Name: cu.Name, Phone: cu.Phone})
	}
	return c.JSON(resp)
}
