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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (id, company_id, customer_id, type, name, nrc, mrc, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.CompanyID, service.CustomerID, service.Type, service.Name,
		service.NRC, service.MRC, service.StartDate, service.EndDate,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID. Retorna nil si no existe.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `
		SELECT id, company_id, customer_id, type, name, nrc, mrc, start_date, end_date, created_at, updated_at
		FROM services WHERE id = $1`
	var s entity.Service
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.CustomerID, &s.Type, &s.Name,
		&s.NRC, &s.MRC, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByCompany lista servicios de la empresa con el nombre del cliente dueño
// (LEFT JOIN), ordenados por fecha de inicio descendente.
func (r *ServiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Service, error) {
	query := `
		SELECT s.id, s.company_id, s.customer_id, s.type, s.name, s.nrc, s.mrc,
		       s.start_date, s.end_date, s.created_at, s.updated_at,
		       COALESCE(c.name, '')
		FROM services s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.company_id = $1
		ORDER BY s.start_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.CustomerID, &s.Type, &s.Name, &s.NRC, &s.MRC,
			&s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt, &s.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un servicio. Retorna domain.ErrNotFound si no afecta filas.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services
		SET customer_id = $2, type = $3, name = $4, nrc = $5, mrc = $6,
		    start_date = $7, end_date = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		service.ID, service.CustomerID, service.Type, service.Name,
		service.NRC, service.MRC, service.StartDate, service.EndDate, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un servicio por ID. Retorna domain.ErrNotFound si no afecta filas.
func (r *ServiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByCustomer borra todos los servicios del cliente (cascada).
func (r *ServiceRepo) DeleteByCustomer(customerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete services by customer: %w", err)
	}
	return nil
}
