package dto

import (
	"time"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

// UploadResponse respuesta a la ingesta de un export POS.
type UploadResponse struct {
	UploadID string `json:"upload_id"`
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}

// CustomerResponse un cliente seleccionable.
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerListResponse listado de clientes para el canal de pago activo.
type CustomerListResponse struct {
	PaymentMode string             `json:"payment_mode"`
	Customers   []CustomerResponse `json:"customers"`
	Total       int                `json:"total"`
}

// CustomerSelection un cliente elegido para generación, con su bandera de
// scheme promocional.
type CustomerSelection struct {
	Phone  string `json:"phone"`
	Scheme bool   `json:"scheme"`
}

// GenerateReceiptsRequest cuerpo de la generación de un lote de estados de
// cuenta. Las fechas van en formato 2006-01-02.
type GenerateReceiptsRequest struct {
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	PaymentMode string              `json:"payment_mode"`
	Customers   []CustomerSelection `json:"customers"`
}

// LineItemResponse una línea del estado de cuenta (vista previa JSON).
// Las líneas que no decodificaron llevan valid=false y montos vacíos.
type LineItemResponse struct {
	Date     string `json:"date"`
	Kind     string `json:"kind"`
	Product  string `json:"product,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Rate     string `json:"rate,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Discount string `json:"discount,omitempty"`
	Valid    bool   `json:"valid"`
}

// StatementResponse vista previa del estado de cuenta de un cliente.
type StatementResponse struct {
	Customer    CustomerResponse   `json:"customer"`
	PaymentMode string             `json:"payment_mode"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Scheme      bool               `json:"scheme"`
	Lines       []LineItemResponse `json:"lines"`
	Total       string             `json:"total"`
}

// NewStatementResponse mapea el resultado de facturación a su vista JSON.
func NewStatementResponse(r *entity.BillingResult) StatementResponse {
	resp := StatementResponse{
		Customer:    CustomerResponse{Name: r.Customer.Name, Phone: r.Customer.Phone},
		PaymentMode: r.PaymentMode,
		StartDate:   r.Range.Start.Format("2006-01-02"),
		EndDate:     r.Range.End.Format("2006-01-02"),
		Scheme:      r.SchemeApplied,
		Total:       r.Total.StringFixed(2),
	}
	for _, l := range r.Lines {
		line := LineItemResponse{
			Date:  l.Date.Format("2006-01-02"),
			Kind:  l.Kind,
			Valid: l.Valid,
		}
		if l.Kind == entity.EntryKindDiscount {
			if l.Valid {
				line.Discount = l.Discount.StringFixed(2)
			}
		} else {
			line.Product = l.Product
			if l.Valid {
				line.Quantity = l.Quantity.String()
				line.Rate = l.Rate.StringFixed(2)
				line.Amount = l.Amount.StringFixed(2)
			}
		}
		resp.Lines = append(resp.Lines, line)
	}
	return resp
}

// ParseDateRange interpreta las fechas del request.
func ParseDateRange(startDate, endDate string) (entity.DateRange, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return entity.DateRange{}, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return entity.DateRange{}, err
	}
	return entity.NewDateRange(start, end), nil
}
