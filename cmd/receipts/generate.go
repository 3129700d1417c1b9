package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/dto"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

var generateFlags struct {
	input     string
	from      string
	to        string
	mode      string
	all       bool
	customers []string
	schemeFor []string
	schemeAll bool
	outDir    string
	zip       bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Genera los PDFs de estado de cuenta de los clientes seleccionados",
	Example: `  receipts generate -i junio.xlsx --from 2024-06-01 --to 2024-06-30 --mode Credit --all -o ./salida
  receipts generate -i junio.xlsx --from 2024-06-01 --to 2024-06-30 --customer 9876543210 --scheme-for 9876543210 -o ./salida --zip`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.input, "input", "i", "", "export POS xlsx de entrada (requerido)")
	f.StringVar(&generateFlags.from, "from", "", "inicio del rango, formato 2006-01-02 (requerido)")
	f.StringVar(&generateFlags.to, "to", "", "fin del rango inclusive, formato 2006-01-02 (requerido)")
	f.StringVar(&generateFlags.mode, "mode", entity.PaymentModeAll, "canal de pago (Credit, Cash, ...); All no restringe")
	f.BoolVar(&generateFlags.all, "all", false, "seleccionar todos los clientes del canal")
	f.StringSliceVar(&generateFlags.customers, "customer", nil, "teléfono canónico de un cliente a incluir (repetible)")
	f.StringSliceVar(&generateFlags.schemeFor, "scheme-for", nil, "teléfonos con el scheme promocional aplicado (repetible)")
	f.BoolVar(&generateFlags.schemeAll, "scheme", false, "aplicar el scheme promocional a toda la selección")
	f.StringVarP(&generateFlags.outDir, "out", "o", ".", "directorio de salida")
	f.BoolVar(&generateFlags.zip, "zip", false, "escribir solo el ZIP cuando hay dos o más documentos")

	_ = generateCmd.MarkFlagRequired("input")
	_ = generateCmd.MarkFlagRequired("from")
	_ = generateCmd.MarkFlagRequired("to")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if !generateFlags.all && len(generateFlags.customers) == 0 {
		return fmt.Errorf("indicar --all o al menos un --customer")
	}

	svc, err := buildServices()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	content, err := os.ReadFile(generateFlags.input)
	if err != nil {
		return fmt.Errorf("leer %s: %w", generateFlags.input, err)
	}
	up, err := svc.upload.Ingest(ctx, filepath.Base(generateFlags.input), content)
	if err != nil {
		return err
	}

	dateRange, err := dto.ParseDateRange(generateFlags.from, generateFlags.to)
	if err != nil {
		return fmt.Errorf("rango de fechas inválido; formato esperado 2006-01-02: %w", err)
	}

	selection, err := buildSelection(cmd, svc, up.ID)
	if err != nil {
		return err
	}

	batch, err := svc.receipt.GenerateBatch(ctx, up.ID, selection, dateRange, generateFlags.mode)
	if err != nil {
		return err
	}

	for _, sk := range batch.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "omitido (sin transacciones en el rango): %s (%s)\n", sk.Name, sk.Phone)
	}
	if len(batch.Documents) == 0 {
		return fmt.Errorf("%w (rango %s a %s)", domain.ErrNoTransactions, generateFlags.from, generateFlags.to)
	}

	if err := os.MkdirAll(generateFlags.outDir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de salida: %w", err)
	}

	if generateFlags.zip && batch.Zip != nil {
		path := filepath.Join(generateFlags.outDir, batch.ZipName)
		if err := os.WriteFile(path, batch.Zip, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d documentos)\n", path, len(batch.Documents))
		return nil
	}

	for _, doc := range batch.Documents {
		path := filepath.Join(generateFlags.outDir, doc.File.Name)
		if err := os.WriteFile(path, doc.File.Content, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// buildSelection traduce las banderas a un conjunto de selección: --all toma
// el listado completo del canal; --customer arma la selección explícita en el
// orden dado. --scheme-for marca clientes puntuales y --scheme a todos.
func buildSelection(cmd *cobra.Command, svc *services, uploadID string) (entity.SelectionSet, error) {
	schemeFor := make(map[string]bool, len(generateFlags.schemeFor))
	for _, p := range generateFlags.schemeFor {
		schemeFor[p] = true
	}

	if generateFlags.all {
		customers, err := svc.customer.List(cmd.Context(), uploadID, generateFlags.mode)
		if err != nil {
			return entity.SelectionSet{}, err
		}
		entries := make([]entity.Selection, 0, len(customers))
		for _, c := range customers {
			entries = append(entries, entity.Selection{
				Phone:       c.Phone,
				ApplyScheme: generateFlags.schemeAll || schemeFor[c.Phone],
			})
		}
		return entity.NewSelectionSet(entries), nil
	}

	entries := make([]entity.Selection, 0, len(generateFlags.customers))
	for _, phone := range generateFlags.customers {
		entries = append(entries, entity.Selection{
			Phone:       phone,
			ApplyScheme: generateFlags.schemeAll || schemeFor[phone],
		})
	}
	return entity.NewSelectionSet(entries), nil
}
