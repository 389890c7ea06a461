package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const pgUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de un constraint UNIQUE. El
// contexto de la tabla decide el error de dominio: en invoices es el número,
// en invoice_services el PO, en companies el código y en users el par
// (company_id, email).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
