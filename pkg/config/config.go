package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// config.yaml y variables de entorno; las env vars tienen prioridad).
// Sin archivo de configuración se usan los defaults embebidos, que
// corresponden al export POS de referencia.
type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	Excel        ExcelConfig
	Scheme       SchemeConfig
	Receipt      ReceiptConfig
	PaymentModes []string
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ExcelConfig hoja y mapeo de columnas del export POS.
type ExcelConfig struct {
	Sheet   string
	Columns ColumnsConfig
}

// ColumnsConfig cabecera de cada campo en la hoja de transacciones.
type ColumnsConfig struct {
	ReceiptID      string
	Date           string
	Cashier        string
	CustomerName   string
	CustomerNumber string
	EntryType      string
	EntryName      string
	PaymentMode    string
}

// SchemeConfig precios del scheme promocional: un producto, dos puntos de
// precio (presentación de 1L y de 500ml) con su tarifa sustituta.
type SchemeConfig struct {
	Product              string
	Price1LOriginal      float64
	Price1LDiscounted    float64
	Price500MLOriginal   float64
	Price500MLDiscounted float64
}

// ReceiptConfig textos fijos del documento PDF.
type ReceiptConfig struct {
	Title    string
	Currency string
	Footer   string
}

// Load lee la configuración desde config.yaml (directorio actual o ./config)
// y variables de entorno (APP_ENV, HTTP_PORT, EXCEL_SHEET, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // el archivo es opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("app.env"),
			Name: v.GetString("app.name"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		Excel: ExcelConfig{
			Sheet: v.GetString("excel.sheet"),
			Columns: ColumnsConfig{
				ReceiptID:      v.GetString("excel.columns.receipt_id"),
				Date:           v.GetString("excel.columns.date"),
				Cashier:        v.GetString("excel.columns.cashier"),
				CustomerName:   v.GetString("excel.columns.customer_name"),
				CustomerNumber: v.GetString("excel.columns.customer_number"),
				EntryType:      v.GetString("excel.columns.entry_type"),
				EntryName:      v.GetString("excel.columns.entry_name"),
				PaymentMode:    v.GetString("excel.columns.payment_mode"),
			},
		},
		Scheme: SchemeConfig{
			Product:              v.GetString("scheme.product"),
			Price1LOriginal:      v.GetFloat64("scheme.price_1l_original"),
			Price1LDiscounted:    v.GetFloat64("scheme.price_1l_discounted"),
			Price500MLOriginal:   v.GetFloat64("scheme.price_500ml_original"),
			Price500MLDiscounted: v.GetFloat64("scheme.price_500ml_discounted"),
		},
		Receipt: ReceiptConfig{
			Title:    v.GetString("receipt.title"),
			Currency: v.GetString("receipt.currency"),
			Footer:   v.GetString("receipt.footer"),
		},
		PaymentModes: v.GetStringSlice("payment_modes"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "srilalita-receipts")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)

	v.SetDefault("excel.sheet", "receiptsWithItems")
	v.SetDefault("excel.columns.receipt_id", "ReceiptId")
	v.SetDefault("excel.columns.date", "Date")
	v.SetDefault("excel.columns.cashier", "Cashier")
	v.SetDefault("excel.columns.customer_name", "CustomerName")
	v.SetDefault("excel.columns.customer_number", "CustomerNumber")
	v.SetDefault("excel.columns.entry_type", "EntryType")
	v.SetDefault("excel.columns.entry_name", "EntryName")
	v.SetDefault("excel.columns.payment_mode", "PaymentMode")

	v.SetDefault("scheme.product", "Raw Whole Milk")
	v.SetDefault("scheme.price_1l_original", 60.0)
	v.SetDefault("scheme.price_1l_discounted", 55.0)
	v.SetDefault("scheme.price_500ml_original", 30.0)
	v.SetDefault("scheme.price_500ml_discounted", 27.5)

	v.SetDefault("receipt.title", "Customer Receipt")
	v.SetDefault("receipt.currency", "Rs.")
	v.SetDefault("receipt.footer",
		"Thank you for trusting Sri Lalita's pure and nutritious milk.")

	v.SetDefault("payment_modes", []string{"Credit", "Cash", "UPI / BHIM", "Card"})
}
