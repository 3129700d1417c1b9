package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UploadUC   *receipts.UploadUseCase
	CustomerUC *receipts.CustomerUseCase
	ReceiptUC  *receipts.ReceiptUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Uploads: ingesta, consulta y descarte de exports POS
	uploads := api.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.UploadUC)
	uploads.Post("/", uploadHandler.Create)
	uploads.Delete("/:id", uploadHandler.Delete)

	// Clientes del upload
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	uploads.Get("/:id/customers", customerHandler.List)

	// Estados de cuenta: vista previa y generación del lote PDF
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	uploads.Get("/:id/customers/:phone/statement", receiptHandler.Statement)
	uploads.Post("/:id/receipts", receiptHandler.Generate)
}
