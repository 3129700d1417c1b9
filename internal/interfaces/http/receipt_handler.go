package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/dto"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// ReceiptHandler vista previa de estados de cuenta y generación de lotes PDF.
type ReceiptHandler struct {
	uc *receipts.ReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipts.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Statement calcula el estado de cuenta de un cliente sin renderizar el PDF.
// Query params: start, end (2006-01-02), payment_mode, scheme (bool).
// GET /api/uploads/:id/customers/:phone/statement
func (h *ReceiptHandler) Statement(c *fiber.Ctx) error {
	id := c.Params("id")
	phone := c.Params("phone")
	if id == "" || phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y teléfono requeridos"})
	}
	dateRange, err := dto.ParseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas; formato esperado 2006-01-02"})
	}
	paymentMode := c.Query("payment_mode", entity.PaymentModeAll)
	applyScheme := c.QueryBool("scheme")

	result, err := h.uc.Statement(c.Context(), id, phone, dateRange, paymentMode, applyScheme)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "upload o cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewStatementResponse(result))
}

// Generate produce el lote de PDFs de los clientes seleccionados. Con un solo
// documento responde el PDF directo; con dos o más responde el ZIP. Los
// clientes omitidos por falta de transacciones se reportan en la cabecera
// X-Skipped-Customers.
// POST /api/uploads/:id/receipts
func (h *ReceiptHandler) Generate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.GenerateReceiptsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dateRange, err := dto.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas; formato esperado 2006-01-02"})
	}
	paymentMode := in.PaymentMode
	if paymentMode == "" {
		paymentMode = entity.PaymentModeAll
	}

	selections := make([]entity.Selection, 0, len(in.Customers))
	for _, sel := range in.Customers {
		selections = append(selections, entity.Selection{Phone: sel.Phone, ApplyScheme: sel.Scheme})
	}

	batch, err := h.uc.GenerateBatch(c.Context(), id, entity.NewSelectionSet(selections), dateRange, paymentMode)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySelection) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SELECTION", Message: "ningún cliente seleccionado"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "upload no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set("X-Skipped-Customers", strconv.Itoa(len(batch.Skipped)))

	if len(batch.Documents) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: "ningún cliente seleccionado tiene transacciones en el rango"})
	}
	if batch.Zip != nil {
		c.Set(fiber.HeaderContentType, "application/zip")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", batch.ZipName))
		return c.Send(batch.Zip)
	}
	doc := batch.Documents[0]
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.File.Name))
	return c.Send(doc.File.Content)
}
