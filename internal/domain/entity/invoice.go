package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura (deben coincidir con el CHECK de la tabla invoices).
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa la cabecera de una factura. Number es único a nivel de
// sistema (constraint UNIQUE en storage, pre-check en aplicación).
type Invoice struct {
	ID         string
	CompanyID  string
	CustomerID string
	Number     string
	Status     string // ver constantes InvoiceStatus*
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceService representa una línea de factura: un servicio con cantidad y
// la orden de compra (PO) del cliente. CustomerPO es único entre todas las líneas.
type InvoiceService struct {
	ID         string
	InvoiceID  string
	ServiceID  string
	Qty        int
	CustomerPO string
	CreatedAt  time.Time
}

// InvoiceServiceDetail: línea enriquecida con los datos del servicio
// (JOIN con services) para respuestas, PDF y exportaciones.
type InvoiceServiceDetail struct {
	InvoiceService
	ServiceName string
	ServiceType string
	MRC         decimal.Decimal
}

// LineTotal devuelve qty * MRC del servicio.
func (d *InvoiceServiceDetail) LineTotal() decimal.Decimal {
	return d.MRC.Mul(decimal.NewFromInt(int64(d.Qty)))
}
