package xmlexport

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturia/billing-api/internal/domain/entity"
)

func sampleData() (*entity.Invoice, *entity.Company, *entity.Customer, []*entity.InvoiceServiceDetail) {
	invoice := &entity.Invoice{
		ID:        "inv-1",
		Number:    "INV-0001",
		Status:    entity.InvoiceStatusPending,
		CreatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	company := &entity.Company{Code: "ACME", Name: "ACME Telecom", Address: "Calle 1", Phone: "555-0100"}
	customer := &entity.Customer{Name: "Cliente Uno", Address: "Av. Central 42"}
	lines := []*entity.InvoiceServiceDetail{
		{
			InvoiceService: entity.InvoiceService{Qty: 2, CustomerPO: "PO-100"},
			ServiceName:    "Fibra 100M",
			ServiceType:    entity.ServiceTypeInternet,
			MRC:            decimal.RequireFromString("150.00"),
		},
		{
			InvoiceService: entity.InvoiceService{Qty: 1, CustomerPO: "PO-101"},
			ServiceName:    "Hosting web",
			ServiceType:    entity.ServiceTypeHosting,
			MRC:            decimal.RequireFromString("45.50"),
		},
	}
	return invoice, company, customer, lines
}

func TestInvoiceXML_Estructura(t *testing.T) {
	invoice, company, customer, lines := sampleData()

	out, err := NewInvoiceXML().Build(invoice, company, customer, lines)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "INV-0001", root.SelectAttrValue("number", ""))
	assert.Equal(t, "pending", root.SelectAttrValue("status", ""))
	assert.Equal(t, "2026-03-15", root.SelectAttrValue("issuedAt", ""))

	issuer := root.SelectElement("Issuer")
	require.NotNil(t, issuer)
	assert.Equal(t, "ACME", issuer.SelectAttrValue("code", ""))
	assert.Equal(t, "ACME Telecom", issuer.SelectElement("Name").Text())

	cust := root.SelectElement("Customer")
	require.NotNil(t, cust)
	assert.Equal(t, "Cliente Uno", cust.SelectElement("Name").Text())

	lineEls := root.SelectElement("Lines").SelectElements("Line")
	require.Len(t, lineEls, 2)
	assert.Equal(t, "2", lineEls[0].SelectAttrValue("qty", ""))
	assert.Equal(t, "PO-100", lineEls[0].SelectAttrValue("customerPO", ""))
	assert.Equal(t, "Fibra 100M", lineEls[0].SelectElement("Service").Text())
	assert.Equal(t, "internet", lineEls[0].SelectElement("Service").SelectAttrValue("type", ""))
	assert.Equal(t, "300.00", lineEls[0].SelectElement("Total").Text())

	// total = 2*150.00 + 1*45.50
	assert.Equal(t, "345.50", root.SelectElement("Total").Text())
}

func TestInvoiceXML_SinLineas(t *testing.T) {
	invoice, company, customer, _ := sampleData()

	out, err := NewInvoiceXML().Build(invoice, company, customer, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Empty(t, root.SelectElement("Lines").SelectElements("Line"))
	assert.Equal(t, "0.00", root.SelectElement("Total").Text())
}
