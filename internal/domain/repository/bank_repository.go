package repository

import "github.com/facturia/billing-api/internal/domain/entity"

// BankRepository define el puerto de persistencia para Bank.
type BankRepository interface {
	Create(bank *entity.Bank) error
	GetByID(id string) (*entity.Bank, error)
	List(limit, offset int) ([]*entity.Bank, error)
	// Update y Delete retornan domain.ErrNotFound si no afectan filas.
	Update(bank *entity.Bank) error
	Delete(id string) error
}
