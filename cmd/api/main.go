package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/pos"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/archive"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/excel"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/memstore"
	infrapdf "github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/pdf"
	httpRouter "github.com/aezakmi121/srilalita-pdf-generator/internal/interfaces/http"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/config"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memstore.NewUploadStore()
	reader := excel.NewReader(excel.Mapping{
		Sheet:          cfg.Excel.Sheet,
		ReceiptID:      cfg.Excel.Columns.ReceiptID,
		Date:           cfg.Excel.Columns.Date,
		Cashier:        cfg.Excel.Columns.Cashier,
		CustomerName:   cfg.Excel.Columns.CustomerName,
		CustomerNumber: cfg.Excel.Columns.CustomerNumber,
		EntryType:      cfg.Excel.Columns.EntryType,
		EntryName:      cfg.Excel.Columns.EntryName,
		PaymentMode:    cfg.Excel.Columns.PaymentMode,
	})
	renderer := infrapdf.NewMarotoReceiptRenderer(infrapdf.Options{
		Title:    cfg.Receipt.Title,
		Currency: cfg.Receipt.Currency,
		Footer:   cfg.Receipt.Footer,
		Scheme:   cfg.Scheme.Product,
	})
	scheme := pos.Scheme{
		Product:         cfg.Scheme.Product,
		Original1L:      decimal.NewFromFloat(cfg.Scheme.Price1LOriginal),
		Discounted1L:    decimal.NewFromFloat(cfg.Scheme.Price1LDiscounted),
		Original500ML:   decimal.NewFromFloat(cfg.Scheme.Price500MLOriginal),
		Discounted500ML: decimal.NewFromFloat(cfg.Scheme.Price500MLDiscounted),
	}

	uploadUC := receipts.NewUploadUseCase(reader, store, log.Component("uploads"))
	customerUC := receipts.NewCustomerUseCase(store)
	receiptUC := receipts.NewReceiptUseCase(
		store, renderer, archive.NewZipArchiver(), scheme, log.Component("receipts"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    64 * 1024 * 1024, // exports POS anuales pesan varios MB
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		UploadUC:   uploadUC,
		CustomerUC: customerUC,
		ReceiptUC:  receiptUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
