package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest body para POST /api/services.
// StartDate/EndDate en formato YYYY-MM-DD; EndDate vacío = servicio vigente.
type CreateServiceRequest struct {
	CustomerID string          `json:"cust_id"`
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	NRC        decimal.Decimal `json:"nrc"`
	MRC        decimal.Decimal `json:"mrc"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date,omitempty"`
}

// UpdateServiceRequest body para PUT /api/services/:id.
type UpdateServiceRequest struct {
	CustomerID string          `json:"cust_id"`
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	NRC        decimal.Decimal `json:"nrc"`
	MRC        decimal.Decimal `json:"mrc"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date,omitempty"`
}

// ServiceResponse servicio en respuestas. CustomerName viene del JOIN en listados.
type ServiceResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	CustomerID   string          `json:"cust_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	NRC          decimal.Decimal `json:"nrc"`
	MRC          decimal.Decimal `json:"mrc"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date,omitempty"`
}
