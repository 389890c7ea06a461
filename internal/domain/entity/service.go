package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de servicio válidos (deben coincidir con el CHECK de la tabla services).
const (
	ServiceTypeInternet     = "internet"
	ServiceTypeConnectivity = "connectivity"
	ServiceTypeHosting      = "hosting"
	ServiceTypeCloud        = "cloud"
	ServiceTypeSecurity     = "security"
	ServiceTypeMaintenance  = "maintenance"
)

// Service representa un servicio contratado por un cliente.
// NRC: cargo único de instalación. MRC: cargo mensual recurrente.
type Service struct {
	ID         string
	CompanyID  string
	CustomerID string
	Type       string // ver constantes ServiceType*
	Name       string
	NRC        decimal.Decimal
	MRC        decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time // nil = servicio vigente sin fecha de corte
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// CustomerName se llena solo en listados (LEFT JOIN con customers).
	CustomerName string
}
