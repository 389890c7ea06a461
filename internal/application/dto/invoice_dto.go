package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveInvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// En actualización el set de servicios reemplaza por completo al existente.
type SaveInvoiceRequest struct {
	Number     string               `json:"invoice_number"`
	CustomerID string               `json:"cust_id"`
	Status     string               `json:"status,omitempty"`
	Services   []InvoiceLineRequest `json:"services"`
}

// InvoiceLineRequest línea de factura (servicio, cantidad, PO del cliente).
type InvoiceLineRequest struct {
	ServiceID  string `json:"service_id"`
	Qty        int    `json:"qty"`
	CustomerPO string `json:"customer_po"`
}

// InvoiceResponse factura con líneas para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	CustomerID   string                `json:"cust_id"`
	CustomerName string                `json:"customer_name,omitempty"`
	Number       string                `json:"invoice_number"`
	Status       string                `json:"status"`
	Total        decimal.Decimal       `json:"total"`
	CreatedAt    time.Time             `json:"created_at"`
	Services     []InvoiceLineResponse `json:"services"`
}

// InvoiceLineResponse línea en la respuesta, enriquecida con el servicio.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name,omitempty"`
	ServiceType string          `json:"service_type,omitempty"`
	Qty         int             `json:"qty"`
	CustomerPO  string          `json:"customer_po"`
	MRC         decimal.Decimal `json:"mrc"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceListItem cabecera de factura en listados.
type InvoiceListItem struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"cust_id"`
	Number     string    `json:"invoice_number"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
