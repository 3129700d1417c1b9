// Command receipts genera estados de cuenta PDF desde un export POS xlsx,
// sin levantar el servidor HTTP. Pensado para el corte mensual por lotes.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
