package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// facturación atados a ella. Si fn retorna error, el caller hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		serviceRepo repository.ServiceRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		lines []*entity.InvoiceServiceDetail,
	) ([]byte, error)
}

// InvoiceXMLBuilder genera el documento XML (sin firmar) de una factura.
type InvoiceXMLBuilder interface {
	Build(
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		lines []*entity.InvoiceServiceDetail,
	) ([]byte, error)
}

// InvoiceExportRow fila del libro Excel de facturas.
type InvoiceExportRow struct {
	Number       string
	CustomerName string
	Status       string
	Lines        int
	Total        decimal.Decimal
	CreatedAt    time.Time
}

// InvoiceExcelExporter arma el libro Excel con el listado de facturas.
type InvoiceExcelExporter interface {
	Export(companyName string, rows []InvoiceExportRow) ([]byte, error)
}
