package billing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// ExportUseCase arma los documentos descargables de facturación: el PDF y el
// XML de una factura individual y el libro Excel con todas las facturas de
// la empresa. Carga los datos y delega el render en los generadores de
// infraestructura.
type ExportUseCase struct {
	invoiceRepo   repository.InvoiceRepository
	customerRepo  repository.CustomerRepository
	companyRepo   repository.CompanyRepository
	pdfGen        InvoicePDFGenerator
	xmlBuilder    InvoiceXMLBuilder
	excelExporter InvoiceExcelExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	pdfGen InvoicePDFGenerator,
	xmlBuilder InvoiceXMLBuilder,
	excelExporter InvoiceExcelExporter,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
		companyRepo:   companyRepo,
		pdfGen:        pdfGen,
		xmlBuilder:    xmlBuilder,
		excelExporter: excelExporter,
	}
}

// invoiceBundle agrupa todo lo que un documento de factura necesita.
type invoiceBundle struct {
	invoice  *entity.Invoice
	company  *entity.Company
	customer *entity.Customer
	lines    []*entity.InvoiceServiceDetail
}

func (uc *ExportUseCase) loadBundle(companyID, invoiceID string) (*invoiceBundle, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	return &invoiceBundle{invoice: invoice, company: company, customer: customer, lines: lines}, nil
}

// InvoicePDF genera el PDF de la factura. Retorna el contenido y el nombre
// de archivo sugerido.
func (uc *ExportUseCase) InvoicePDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	b, err := uc.loadBundle(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdfGen.GenerateInvoicePDF(ctx, b.invoice, b.company, b.customer, b.lines)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF de factura %s: %w", b.invoice.Number, err)
	}
	return pdf, fmt.Sprintf("factura_%s.pdf", b.invoice.Number), nil
}

// InvoiceXML genera la representación XML de la factura.
func (uc *ExportUseCase) InvoiceXML(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	b, err := uc.loadBundle(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	xml, err := uc.xmlBuilder.Build(b.invoice, b.company, b.customer, b.lines)
	if err != nil {
		return nil, "", fmt.Errorf("generando XML de factura %s: %w", b.invoice.Number, err)
	}
	return xml, fmt.Sprintf("factura_%s.xml", b.invoice.Number), nil
}

// InvoicesExcel genera un libro Excel con todas las facturas de la empresa.
func (uc *ExportUseCase) InvoicesExcel(ctx context.Context, companyID string) ([]byte, string, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	// El export cubre todas las facturas: se pagina internamente en bloques.
	const batch = 500
	var invoices []*entity.Invoice
	for offset := 0; ; offset += batch {
		page, err := uc.invoiceRepo.ListByCompany(companyID, batch, offset)
		if err != nil {
			return nil, "", err
		}
		invoices = append(invoices, page...)
		if len(page) < batch {
			break
		}
	}

	rows := make([]InvoiceExportRow, 0, len(invoices))
	for _, inv := range invoices {
		lines, err := uc.invoiceRepo.GetLinesByInvoiceID(inv.ID)
		if err != nil {
			return nil, "", err
		}
		total := decimal.Zero
		for _, line := range lines {
			total = total.Add(line.LineTotal())
		}
		customerName := ""
		if customer, err := uc.customerRepo.GetByID(inv.CustomerID); err != nil {
			// La fila sale igual en el libro, solo sin el nombre del cliente.
			log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("no se pudo resolver el cliente de la factura")
		} else if customer != nil {
			customerName = customer.Name
		}
		rows = append(rows, InvoiceExportRow{
			Number:       inv.Number,
			CustomerName: customerName,
			Status:       inv.Status,
			Lines:        len(lines),
			Total:        total,
			CreatedAt:    inv.CreatedAt,
		})
	}

	book, err := uc.excelExporter.Export(company.Name, rows)
	if err != nil {
		return nil, "", fmt.Errorf("generando Excel de facturas: %w", err)
	}
	return book, fmt.Sprintf("facturas_%s.xlsx", company.Code), nil
}
