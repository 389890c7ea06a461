package entity

import "time"

// Company representa una empresa/tenant del sistema. El código (Code) es el
// valor que el cliente manda en el header x-company-code para resolver el tenant.
type Company struct {
	ID        string
	Code      string
	Name      string
	Address   string
	Phone     string
	Fax       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
