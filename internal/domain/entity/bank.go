package entity

import "time"

// Tipos de banco válidos.
const (
	BankTypeCustomer = "customer"
	BankTypeCompany  = "company"
)

// Bank representa una cuenta bancaria (del cliente o de la empresa).
// Entidad independiente: sin relaciones con el resto del modelo.
type Bank struct {
	ID            string
	Name          string
	Address       string
	Code          string
	SwiftCode     string
	IBANCode      string
	Currency      string
	AccountNumber string
	Type          string // customer | company
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
