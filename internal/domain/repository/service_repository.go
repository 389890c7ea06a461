package repository

import "github.com/facturia/billing-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	// ListByCompany ordena por start_date descendente y llena CustomerName
	// (LEFT JOIN con customers).
	ListByCompany(companyID string, limit, offset int) ([]*entity.Service, error)
	// Update y Delete retornan domain.ErrNotFound si no afectan filas.
	Update(service *entity.Service) error
	Delete(id string) error
	// DeleteByCustomer borra todos los servicios del cliente (cascada).
	DeleteByCustomer(customerID string) error
}
