package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/pos"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/archive"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/excel"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/memstore"
	infrapdf "github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/pdf"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/config"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/logger"
)

const version = "1.1.0"

var rootCmd = &cobra.Command{
	Use:           "receipts",
	Short:         "Genera estados de cuenta PDF desde un export POS",
	Long:          "Lee un export xlsx del POS, resuelve los clientes por teléfono y produce un PDF de estado de cuenta por cliente, con empaquetado ZIP opcional.",
	SilenceUsage:  true,
	SilenceErrors: false,
	Version:       version,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Imprime la versión",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "receipts %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(versionCmd)
}

// services agrupa los casos de uso ya cableados para una invocación del CLI.
type services struct {
	upload   *receipts.UploadUseCase
	customer *receipts.CustomerUseCase
	receipt  *receipts.ReceiptUseCase
}

// buildServices arma la aplicación con un store en memoria local a la
// invocación; el CLI no retiene uploads entre corridas.
func buildServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
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

	return &services{
		upload:   receipts.NewUploadUseCase(reader, store, log.Component("uploads")),
		customer: receipts.NewCustomerUseCase(store),
		receipt:  receipts.NewReceiptUseCase(store, renderer, archive.NewZipArchiver(), scheme, log.Component("receipts")),
	}, nil
}
