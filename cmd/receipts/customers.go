package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

var customersFlags struct {
	input string
	mode  string
}

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Lista los clientes seleccionables de un export POS",
	RunE:  runCustomers,
}

func init() {
	f := customersCmd.Flags()
	f.StringVarP(&customersFlags.input, "input", "i", "", "export POS xlsx de entrada (requerido)")
	f.StringVar(&customersFlags.mode, "mode", entity.PaymentModeAll, "canal de pago (Credit, Cash, ...); All no restringe")
	_ = customersCmd.MarkFlagRequired("input")
}

func runCustomers(cmd *cobra.Command, _ []string) error {
	svc, err := buildServices()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	content, err := os.ReadFile(customersFlags.input)
	if err != nil {
		return fmt.Errorf("leer %s: %w", customersFlags.input, err)
	}
	up, err := svc.upload.Ingest(ctx, filepath.Base(customersFlags.input), content)
	if err != nil {
		return err
	}

	customers, err := svc.customer.List(ctx, up.ID, customersFlags.mode)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NOMBRE\tTELÉFONO")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Phone)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d clientes (%s)\n", len(customers), customersFlags.mode)
	return nil
}
