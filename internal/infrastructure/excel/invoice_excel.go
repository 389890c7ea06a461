// Package excel genera el libro de exportación de facturas con excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/facturia/billing-api/internal/application/billing"
	"github.com/facturia/billing-api/internal/infrastructure/format"
)

// invoiceHeaders columnas del libro, en orden.
var invoiceHeaders = []string{
	"Invoice Number",
	"Customer",
	"Status",
	"Lines",
	"Total",
	"Created At",
}

var invoiceColumnWidths = []float64{20, 30, 12, 8, 15, 20}

var _ billing.InvoiceExcelExporter = (*InvoiceExcel)(nil)

// InvoiceExcel implementa billing.InvoiceExcelExporter.
type InvoiceExcel struct{}

// NewInvoiceExcel construye el exportador.
func NewInvoiceExcel() *InvoiceExcel { return &InvoiceExcel{} }

// Export genera el libro con una hoja "Invoices": fila de título con el nombre
// de la empresa, cabecera con estilo y una fila por factura.
func (e *InvoiceExcel) Export(companyName string, rows []billing.InvoiceExportRow) ([]byte, error) {
	f := excelize.NewFile()
	// No defer Close(): WriteTo necesita el archivo abierto.

	const sheetName = "Invoices"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	// Título con el nombre de la empresa.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: estilo de título: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A1", companyName+" — Facturas"); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: escribir título: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: aplicar estilo de título: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	const headerRow = 2
	for col, header := range invoiceHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: coordenadas de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: escribir cabecera %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: aplicar estilo de cabecera: %w", err)
		}
	}

	for i := range invoiceHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: nombre de columna: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, invoiceColumnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: ancho de columna: %w", err)
		}
	}

	for i, r := range rows {
		rowNum := headerRow + 1 + i
		values := []interface{}{
			r.Number,
			r.CustomerName,
			r.Status,
			r.Lines,
			format.USD(r.Total),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("excel: coordenadas de dato: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("excel: escribir celda %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("excel: cerrar libro: %w", err)
	}
	return buf.Bytes(), nil
}
