package billing

import (
	"context"

	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// CascadeUseCase centraliza la política de borrado en cascada por relación.
// Ningún handler arma su propia secuencia de deletes: el orden vive aquí.
//
//   - Cliente: líneas de sus facturas → facturas → servicios → cliente.
//   - Servicio: líneas que lo referencian → servicio.
//
// Cada secuencia corre en una sola transacción; si el delete final no afecta
// filas, todo lo anterior se revierte.
type CascadeUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
}

// NewCascadeUseCase construye el caso de uso.
func NewCascadeUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
) *CascadeUseCase {
	return &CascadeUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
	}
}

// DeleteCustomer borra el cliente con todos sus servicios, facturas y líneas.
func (uc *CascadeUseCase) DeleteCustomer(ctx context.Context, companyID, customerID string) error {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		serviceRepo repository.ServiceRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := invoiceRepo.DeleteLinesByCustomer(customerID); err != nil {
			return err
		}
		if err := invoiceRepo.DeleteByCustomer(customerID); err != nil {
			return err
		}
		if err := serviceRepo.DeleteByCustomer(customerID); err != nil {
			return err
		}
		// ErrNotFound aquí revierte los deletes anteriores.
		return customerRepo.Delete(customerID)
	})
}

// DeleteService borra el servicio y las líneas de factura que lo referencian.
func (uc *CascadeUseCase) DeleteService(ctx context.Context, companyID, serviceID string) error {
	service, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if service.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		serviceRepo repository.ServiceRepository,
		_ repository.CustomerRepository,
	) error {
		if err := invoiceRepo.DeleteLinesByService(serviceID); err != nil {
			return err
		}
		return serviceRepo.Delete(serviceID)
	})
}
