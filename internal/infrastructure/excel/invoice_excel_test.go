package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/facturia/billing-api/internal/application/billing"
)

func TestInvoiceExcel_FilasYCabecera(t *testing.T) {
	rows := []billing.InvoiceExportRow{
		{
			Number:       "INV-0001",
			CustomerName: "ACME Corp",
			Status:       "pending",
			Lines:        2,
			Total:        decimal.RequireFromString("345.50"),
			CreatedAt:    time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			Number:       "INV-0002",
			CustomerName: "Otro SA",
			Status:       "paid",
			Lines:        1,
			Total:        decimal.RequireFromString("99.00"),
			CreatedAt:    time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	out, err := NewInvoiceExcel().Export("ACME Telecom", rows)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Invoices", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ACME Telecom — Facturas", title)

	header, err := f.GetCellValue("Invoices", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Invoice Number", header)

	number, err := f.GetCellValue("Invoices", "A3")
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", number)

	total, err := f.GetCellValue("Invoices", "E3")
	require.NoError(t, err)
	assert.Equal(t, "$345.50", total)

	status, err := f.GetCellValue("Invoices", "C4")
	require.NoError(t, err)
	assert.Equal(t, "paid", status)
}

func TestInvoiceExcel_SinFilas(t *testing.T) {
	out, err := NewInvoiceExcel().Export("ACME Telecom", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	// Solo título y cabecera.
	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
