package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/dto"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/pos"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/archive"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/excel"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/memstore"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/infrastructure/pdf"
	"github.com/aezakmi121/srilalita-pdf-generator/pkg/logger"
)

// newTestApp arma la aplicación completa con infraestructura real: lector
// excelize, store en memoria, renderer Maroto y empaquetador ZIP.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store := memstore.NewUploadStore()
	reader := excel.NewReader(excel.DefaultMapping())
	renderer := pdf.NewMarotoReceiptRenderer(pdf.Options{Currency: "Rs."})
	scheme := pos.Scheme{
		Product:         "Raw Whole Milk",
		Original1L:      decimal.NewFromInt(60),
		Discounted1L:    decimal.NewFromInt(55),
		Original500ML:   decimal.NewFromInt(30),
		Discounted500ML: decimal.RequireFromString("27.5"),
	}

	app := fiber.New()
	Router(app, RouterDeps{
		UploadUC:   receipts.NewUploadUseCase(reader, store, log),
		CustomerUC: receipts.NewCustomerUseCase(store),
		ReceiptUC:  receipts.NewReceiptUseCase(store, renderer, archive.NewZipArchiver(), scheme, log),
	})
	return app
}

// buildWorkbook arma un xlsx en memoria con la hoja y filas dadas.
func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

// sampleWorkbook export con dos clientes y filas con campos heredados de la
// fila anterior (celdas en blanco que el carry-forward debe completar).
func sampleWorkbook(t *testing.T) []byte {
	t.Helper()
	return buildWorkbook(t, "receiptsWithItems", [][]interface{}{
		{"ReceiptId", "Date", "Cashier", "CustomerName", "CustomerNumber", "EntryType", "EntryName", "PaymentMode"},
		{"R-1", "2024-06-02 08:15:00", "Sita", "Asha", 9876543210, "Item", "Raw Whole Milk (2 X 60)", "Credit"},
		{"", "", "", "", "", "Item", "Curd (1 X 40)", ""},
		{"R-2", "2024-06-03 09:00:00", "Sita", "Ravi", 9123456780, "Item", "Raw Whole Milk (1 X 30)", "Credit"},
		{"", "", "", "", "", "Discount", "Discount (10)", ""},
		{"R-3", "2024-05-20 10:00:00", "Sita", "Meena", 9000000001, "Item", "Ghee (1 X 500)", "Cash"},
	})
}

func uploadWorkbook(t *testing.T, app *fiber.App, content []byte) dto.UploadResponse {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "receipts.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "la ingesta debe responder 201")

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.UploadID)
	return out
}

func TestAPI_IngestaYListadoDeClientes(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))
	assert.Equal(t, 5, up.Rows, "las cinco filas de datos sobreviven la normalización")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/uploads/"+up.UploadID+"/customers?payment_mode=Credit", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list dto.CustomerListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Equal(t, 2, list.Total, "Meena paga en Cash y no debe aparecer")
	assert.Equal(t, "Asha", list.Customers[0].Name)
	assert.Equal(t, "9876543210", list.Customers[0].Phone)
	assert.Equal(t, "Ravi", list.Customers[1].Name)
}

func TestAPI_VistaPreviaDeEstadoDeCuenta(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	url := fmt.Sprintf("/api/uploads/%s/customers/9876543210/statement?start=2024-06-01&end=2024-06-30&payment_mode=Credit", up.UploadID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var st dto.StatementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "Asha", st.Customer.Name)
	require.Len(t, st.Lines, 2, "el ítem heredado por carry-forward cuenta para Asha")
	assert.Equal(t, "160.00", st.Total, "2x60 de leche más 1x40 de cuajada")
}

func TestAPI_VistaPreviaConScheme(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	url := fmt.Sprintf("/api/uploads/%s/customers/9876543210/statement?start=2024-06-01&end=2024-06-30&scheme=true", up.UploadID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var st dto.StatementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.True(t, st.Scheme)
	assert.Equal(t, "150.00", st.Total, "la leche baja de 60 a 55 por litro con el scheme")
}

func TestAPI_GeneracionDeLote_ZIP(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	body, _ := json.Marshal(dto.GenerateReceiptsRequest{
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-30",
		PaymentMode: "Credit",
		Customers: []dto.CustomerSelection{
			{Phone: "9876543210"},
			{Phone: "9123456780"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/"+up.UploadID+"/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "receipts_01062024_to_30062024.zip")
	assert.Equal(t, "0", resp.Header.Get("X-Skipped-Customers"))

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(content[:2]), "la respuesta debe ser un ZIP")
}

func TestAPI_GeneracionDeLote_PDFUnico(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	body, _ := json.Marshal(dto.GenerateReceiptsRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Customers: []dto.CustomerSelection{
			{Phone: "9876543210"},
			{Phone: "9000000001"}, // las compras de Meena son de mayo
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/"+up.UploadID+"/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Asha - 01-06-2024 to 30-06-2024.pdf")
	assert.Equal(t, "1", resp.Header.Get("X-Skipped-Customers"), "Meena se omite y se reporta")

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestAPI_GeneracionSinDatos(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	body, _ := json.Marshal(dto.GenerateReceiptsRequest{
		StartDate: "2030-01-01",
		EndDate:   "2030-01-31",
		Customers: []dto.CustomerSelection{{Phone: "9876543210"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/"+up.UploadID+"/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "NO_DATA", e.Code)
}

func TestAPI_SeleccionVacia(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	body, _ := json.Marshal(dto.GenerateReceiptsRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/"+up.UploadID+"/receipts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "EMPTY_SELECTION", e.Code)
}

func TestAPI_ErroresDeIngesta(t *testing.T) {
	app := newTestApp(t)

	// hoja equivocada
	wrongSheet := buildWorkbook(t, "ventas", [][]interface{}{{"ReceiptId"}})
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "receipts.xlsx")
	require.NoError(t, err)
	_, err = part.Write(wrongSheet)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "SHEET_NOT_FOUND", e.Code)

	// contenido que no es un libro xlsx
	body.Reset()
	w = multipart.NewWriter(&body)
	part, err = w.CreateFormFile("file", "receipts.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("esto no es un xlsx"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req = httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "un libro corrupto es error del cliente, no del servidor")

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "INVALID_WORKBOOK", e.Code)

	// sin archivo
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/uploads", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_DescarteDeUpload(t *testing.T) {
	app := newTestApp(t)
	up := uploadWorkbook(t, app, sampleWorkbook(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/uploads/"+up.UploadID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/uploads/"+up.UploadID+"/customers", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "el upload descartado ya no existe")

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/uploads/"+up.UploadID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Health(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
