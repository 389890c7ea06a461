package dto

import "time"

// SaveBankRequest body para POST /api/banks y PUT /api/banks/:id.
type SaveBankRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	Code          string `json:"code,omitempty"`
	SwiftCode     string `json:"swift_code,omitempty"`
	IBANCode      string `json:"iban_code,omitempty"`
	Currency      string `json:"currency,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Type          string `json:"type"`
}

// BankResponse banco en respuestas.
type BankResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Code          string    `json:"code,omitempty"`
	SwiftCode     string    `json:"swift_code,omitempty"`
	IBANCode      string    `json:"iban_code,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
