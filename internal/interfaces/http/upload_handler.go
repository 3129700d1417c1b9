package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/dto"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
)

// UploadHandler maneja la ingesta y descarte de exports POS.
type UploadHandler struct {
	uc *receipts.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *receipts.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Create ingesta un export POS en formato xlsx (multipart, campo "file").
// POST /api/uploads
func (h *UploadHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}

	up, err := h.uc.Ingest(c.Context(), fh.Filename, content)
	if err != nil {
		if errors.Is(err, domain.ErrSheetNotFound) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SHEET_NOT_FOUND", Message: "el libro no contiene la hoja de transacciones esperada"})
		}
		if errors.Is(err, domain.ErrMissingColumns) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WORKBOOK", Message: "el archivo no es un libro xlsx válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		UploadID: up.ID,
		Filename: up.Filename,
		Rows:     len(up.Rows),
	})
}

// Delete descarta un upload retenido en memoria.
// DELETE /api/uploads/:id
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Discard(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "upload no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
