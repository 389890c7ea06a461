package repository

import "github.com/facturia/billing-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	// Update y Delete retornan domain.ErrNotFound si no afectan filas.
	Update(customer *entity.Customer) error
	Delete(id string) error
}
