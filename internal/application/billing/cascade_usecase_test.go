package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
)

func newCascadeUC(f *billingFixture) *CascadeUseCase {
	return NewCascadeUseCase(f.txRunner, f.customerRepo, f.serviceRepo)
}

func TestCascadeDeleteCustomer_ArrastraServiciosFacturasYLineas(t *testing.T) {
	f := newBillingFixture()
	invoiceUC := newInvoiceUC(f)
	cascadeUC := newCascadeUC(f)

	// Cliente a borrar, con servicio y factura con línea.
	custA := seedCustomer(t, f, testCompanyID, "Cliente A")
	svcA := seedService(t, f, testCompanyID, custA, "Fibra A", "100.00")
	_, err := invoiceUC.Create(context.Background(), testCompanyID, dto.SaveInvoiceRequest{
		Number: "INV-A", CustomerID: custA,
		Services: []dto.InvoiceLineRequest{{ServiceID: svcA, Qty: 1, CustomerPO: "PO-A"}},
	})
	require.NoError(t, err)

	// Cliente ajeno al borrado: nada suyo debe moverse.
	custB := seedCustomer(t, f, testCompanyID, "Cliente B")
	svcB := seedService(t, f, testCompanyID, custB, "Fibra B", "50.00")
	invB, err := invoiceUC.Create(context.Background(), testCompanyID, dto.SaveInvoiceRequest{
		Number: "INV-B", CustomerID: custB,
		Services: []dto.InvoiceLineRequest{{ServiceID: svcB, Qty: 1, CustomerPO: "PO-B"}},
	})
	require.NoError(t, err)

	require.NoError(t, cascadeUC.DeleteCustomer(context.Background(), testCompanyID, custA))

	gone, err := f.customerRepo.GetByID(custA)
	require.NoError(t, err)
	assert.Nil(t, gone, "el cliente debe desaparecer")
	svcGone, err := f.serviceRepo.GetByID(svcA)
	require.NoError(t, err)
	assert.Nil(t, svcGone, "sus servicios deben desaparecer")
	invGone, err := f.invoiceRepo.GetByNumber("INV-A")
	require.NoError(t, err)
	assert.Nil(t, invGone, "sus facturas deben desaparecer")

	// El cliente B quedó intacto.
	got, err := invoiceUC.GetByID(testCompanyID, invB.ID)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "PO-B", got.Services[0].CustomerPO)
}

func TestCascadeDeleteCustomer_NoEncontrado(t *testing.T) {
	f := newBillingFixture()
	cascadeUC := newCascadeUC(f)

	err := cascadeUC.DeleteCustomer(context.Background(), testCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCascadeDeleteCustomer_OtraEmpresa(t *testing.T) {
	f := newBillingFixture()
	cascadeUC := newCascadeUC(f)
	custID := seedCustomer(t, f, testOtherCompanyID, "Ajeno SA")

	err := cascadeUC.DeleteCustomer(context.Background(), testCompanyID, custID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	still, err := f.customerRepo.GetByID(custID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestCascadeDeleteService_ArrastraLineasPeroNoFacturas(t *testing.T) {
	f := newBillingFixture()
	invoiceUC := newInvoiceUC(f)
	cascadeUC := newCascadeUC(f)

	custID := seedCustomer(t, f, testCompanyID, "ACME Corp")
	svcA := seedService(t, f, testCompanyID, custID, "Fibra", "100.00")
	svcB := seedService(t, f, testCompanyID, custID, "Hosting", "50.00")
	inv, err := invoiceUC.Create(context.Background(), testCompanyID, dto.SaveInvoiceRequest{
		Number: "INV-0001", CustomerID: custID,
		Services: []dto.InvoiceLineRequest{
			{ServiceID: svcA, Qty: 1, CustomerPO: "PO-1"},
			{ServiceID: svcB, Qty: 1, CustomerPO: "PO-2"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, cascadeUC.DeleteService(context.Background(), testCompanyID, svcA))

	svcGone, err := f.serviceRepo.GetByID(svcA)
	require.NoError(t, err)
	assert.Nil(t, svcGone)

	// La factura sigue, solo sin la línea del servicio borrado.
	got, err := invoiceUC.GetByID(testCompanyID, inv.ID)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "PO-2", got.Services[0].CustomerPO)
}

func TestCascadeDeleteService_NoEncontrado(t *testing.T) {
	f := newBillingFixture()
	cascadeUC := newCascadeUC(f)

	err := cascadeUC.DeleteService(context.Background(), testCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
