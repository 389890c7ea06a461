package repository

import "github.com/facturia/billing-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// GetByCode resuelve la empresa por su código (header x-company-code).
	GetByCode(code string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	// Update y Delete retornan domain.ErrNotFound si no afectan filas.
	Update(company *entity.Company) error
	Delete(id string) error
}
