package repository

import "github.com/facturia/billing-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	// Create retorna domain.ErrDuplicate si el número de factura ya existe
	// (constraint UNIQUE en invoices.number).
	Create(invoice *entity.Invoice) error
	// CreateLine retorna *domain.DuplicatePOError si el PO ya está asignado
	// (constraint UNIQUE en invoice_services.customer_po).
	CreateLine(line *entity.InvoiceService) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(number string) (*entity.Invoice, error)
	// FindPOOwner devuelve el invoice_id dueño del PO, excluyendo la factura
	// indicada. Cadena vacía si el PO está libre.
	FindPOOwner(customerPO, excludeInvoiceID string) (string, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceServiceDetail, error)
	// Update retorna domain.ErrNotFound si no afecta filas y domain.ErrDuplicate
	// si el nuevo número choca con otra factura.
	Update(invoice *entity.Invoice) error
	DeleteLines(invoiceID string) error
	// Delete retorna domain.ErrNotFound si no afecta filas.
	Delete(id string) error

	// Cascada por cliente: primero las líneas de sus facturas, luego las facturas.
	DeleteLinesByCustomer(customerID string) error
	DeleteByCustomer(customerID string) error
	// Cascada por servicio: las líneas que referencian el servicio.
	DeleteLinesByService(serviceID string) error
}
