// Package xmlexport serializa facturas a XML con etree.
package xmlexport

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/facturia/billing-api/internal/application/billing"
	"github.com/facturia/billing-api/internal/domain/entity"
)

var _ billing.InvoiceXMLBuilder = (*InvoiceXML)(nil)

// InvoiceXML implementa billing.InvoiceXMLBuilder.
// El documento generado no va firmado: es un export de respaldo, no un
// comprobante fiscal.
type InvoiceXML struct{}

// NewInvoiceXML construye el serializador.
func NewInvoiceXML() *InvoiceXML { return &InvoiceXML{} }

// Build arma el documento:
//
//	<Invoice number="..." status="...">
//	  <Issuer code="...">...</Issuer>
//	  <Customer>...</Customer>
//	  <Lines>
//	    <Line qty="..." customerPO="..."> <Service/> <MRC/> <Total/> </Line>
//	  </Lines>
//	  <Total>...</Total>
//	</Invoice>
func (b *InvoiceXML) Build(
	invoice *entity.Invoice,
	company *entity.Company,
	customer *entity.Customer,
	lines []*entity.InvoiceServiceDetail,
) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("number", invoice.Number)
	root.CreateAttr("status", invoice.Status)
	root.CreateAttr("issuedAt", invoice.CreatedAt.Format("2006-01-02"))

	issuer := root.CreateElement("Issuer")
	issuer.CreateAttr("code", company.Code)
	issuer.CreateElement("Name").SetText(company.Name)
	if company.Address != "" {
		issuer.CreateElement("Address").SetText(company.Address)
	}
	if company.Phone != "" {
		issuer.CreateElement("Phone").SetText(company.Phone)
	}

	cust := root.CreateElement("Customer")
	cust.CreateElement("Name").SetText(customer.Name)
	if customer.Address != "" {
		cust.CreateElement("Address").SetText(customer.Address)
	}

	total := decimal.Zero
	linesEl := root.CreateElement("Lines")
	for _, l := range lines {
		lineEl := linesEl.CreateElement("Line")
		lineEl.CreateAttr("qty", strconv.Itoa(l.Qty))
		lineEl.CreateAttr("customerPO", l.CustomerPO)
		svc := lineEl.CreateElement("Service")
		svc.CreateAttr("type", l.ServiceType)
		svc.SetText(l.ServiceName)
		lineEl.CreateElement("MRC").SetText(l.MRC.StringFixed(2))
		lineEl.CreateElement("Total").SetText(l.LineTotal().StringFixed(2))
		total = total.Add(l.LineTotal())
	}

	root.CreateElement("Total").SetText(total.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar factura: %w", err)
	}
	return out, nil
}
