package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura. El constraint UNIQUE sobre number
// es el respaldo del pre-check de la aplicación: si dos escritores concurrentes
// pasan el pre-check, solo uno logra insertar.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, company_id, customer_id, number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.Number, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de factura. Un 23505 sobre customer_po se
// traduce al error tipado que nombra el PO ofensor.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceService) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_services (id, invoice_id, service_id, qty, customer_po, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.ServiceID, line.Qty, line.CustomerPO, line.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicatePOError{PO: line.CustomerPO}
		}
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura. Retorna nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, number, status, created_at, updated_at
		FROM invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get invoice")
}

// GetByNumber busca una factura por número exacto (case-sensitive). Retorna nil si no existe.
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, number, status, created_at, updated_at
		FROM invoices WHERE number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, number), "get invoice by number")
}

// FindPOOwner devuelve el invoice_id dueño del PO, excluyendo la factura
// indicada. Cadena vacía si el PO está libre.
func (r *InvoiceRepo) FindPOOwner(customerPO, excludeInvoiceID string) (string, error) {
	query := `
		SELECT invoice_id FROM invoice_services
		WHERE customer_po = $1 AND invoice_id <> $2
		LIMIT 1`
	var owner string
	err := r.q.QueryRow(context.Background(), query, customerPO, excludeInvoiceID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find po owner: %w", err)
	}
	return owner, nil
}

// ListByCompany lista facturas de la empresa, más recientes primero.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, number, status, created_at, updated_at
		FROM invoices WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Number, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetLinesByInvoiceID obtiene las líneas de la factura enriquecidas con el servicio.
func (r *InvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceServiceDetail, error) {
	query := `
		SELECT l.id, l.invoice_id, l.service_id, l.qty, l.customer_po, l.created_at,
		       COALESCE(s.name, ''), COALESCE(s.type, ''), COALESCE(s.mrc, 0)
		FROM invoice_services l
		LEFT JOIN services s ON s.id = l.service_id
		WHERE l.invoice_id = $1
		ORDER BY l.created_at`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceServiceDetail
	for rows.Next() {
		var d entity.InvoiceServiceDetail
		if err := rows.Scan(
			&d.ID, &d.InvoiceID, &d.ServiceID, &d.Qty, &d.CustomerPO, &d.CreatedAt,
			&d.ServiceName, &d.ServiceType, &d.MRC,
		); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza número, cliente y estado de la factura.
// Retorna domain.ErrNotFound si no afecta filas y domain.ErrDuplicate si el
// número choca con otra factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, number = $3, status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.Number, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLines borra todas las líneas de la factura (reemplazo completo en updates).
func (r *InvoiceRepo) DeleteLines(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_services WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice lines: %w", err)
	}
	return nil
}

// Delete elimina la cabecera. Retorna domain.ErrNotFound si no afecta filas.
func (r *InvoiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLinesByCustomer borra las líneas de todas las facturas del cliente (cascada).
func (r *InvoiceRepo) DeleteLinesByCustomer(customerID string) error {
	query := `
		DELETE FROM invoice_services
		WHERE invoice_id IN (SELECT id FROM invoices WHERE customer_id = $1)`
	_, err := r.q.Exec(context.Background(), query, customerID)
	if err != nil {
		return fmt.Errorf("delete invoice lines by customer: %w", err)
	}
	return nil
}

// DeleteByCustomer borra todas las facturas del cliente (cascada).
func (r *InvoiceRepo) DeleteByCustomer(customerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete invoices by customer: %w", err)
	}
	return nil
}

// DeleteLinesByService borra las líneas que referencian el servicio (cascada).
func (r *InvoiceRepo) DeleteLinesByService(serviceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_services WHERE service_id = $1`, serviceID)
	if err != nil {
		return fmt.Errorf("delete invoice lines by service: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) scanOne(row pgx.Row, op string) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Number, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
