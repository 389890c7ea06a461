package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

var _ repository.BankRepository = (*BankRepo)(nil)

// BankRepo implementación de BankRepository (usable con pool o tx).
type BankRepo struct {
	q Querier
}

// NewBankRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankRepository(q Querier) *BankRepo {
	return &BankRepo{q: q}
}

const bankColumns = `id, name, address, code, swift_code, iban_code, currency, account_number, type, created_at, updated_at`

// Create persiste un nuevo banco.
func (r *BankRepo) Create(bank *entity.Bank) error {
	query := `
		INSERT INTO banks (id, name, address, code, swift_code, iban_code, currency, account_number, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		bank.ID, bank.Name, bank.Address, bank.Code, bank.SwiftCode, bank.IBANCode,
		bank.Currency, bank.AccountNumber, bank.Type, bank.CreatedAt, bank.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank: %w", err)
	}
	return nil
}

// GetByID obtiene un banco por ID. Retorna nil si no existe.
func (r *BankRepo) GetByID(id string) (*entity.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE id = $1`
	var b entity.Bank
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.Address, &b.Code, &b.SwiftCode, &b.IBANCode,
		&b.Currency, &b.AccountNumber, &b.Type, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank: %w", err)
	}
	return &b, nil
}

// List lista bancos, más recientes primero.
func (r *BankRepo) List(limit, offset int) ([]*entity.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bank
	for rows.Next() {
		var b entity.Bank
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Address, &b.Code, &b.SwiftCode, &b.IBANCode,
			&b.Currency, &b.AccountNumber, &b.Type, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza un banco. Retorna domain.ErrNotFound si no afecta filas.
func (r *BankRepo) Update(bank *entity.Bank) error {
	query := `
		UPDATE banks
		SET name = $2, address = $3, code = $4, swift_code = $5, iban_code = $6,
		    currency = $7, account_number = $8, type = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		bank.ID, bank.Name, bank.Address, bank.Code, bank.SwiftCode, bank.IBANCode,
		bank.Currency, bank.AccountNumber, bank.Type, bank.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un banco por ID. Retorna domain.ErrNotFound si no afecta filas.
func (r *BankRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
