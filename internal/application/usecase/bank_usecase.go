package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
)

// BankUseCase maneja el CRUD de cuentas bancarias.
// Los bancos no tienen relaciones: el delete es directo, sin cascada.
type BankUseCase struct {
	repo repository.BankRepository
}

// NewBankUseCase construye el caso de uso.
func NewBankUseCase(repo repository.BankRepository) *BankUseCase {
	return &BankUseCase{repo: repo}
}

// Create registra una cuenta bancaria.
func (uc *BankUseCase) Create(ctx context.Context, req *dto.SaveBankRequest) (*dto.BankResponse, error) {
	if err := validateBank(req); err != nil {
		return nil, err
	}
	now := time.Now()
	bank := &entity.Bank{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Address:       req.Address,
		Code:          req.Code,
		SwiftCode:     req.SwiftCode,
		IBANCode:      req.IBANCode,
		Currency:      req.Currency,
		AccountNumber: req.AccountNumber,
		Type:          req.Type,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(bank); err != nil {
		return nil, err
	}
	return toBankResponse(bank), nil
}

// GetByID obtiene una cuenta bancaria por ID.
func (uc *BankUseCase) GetByID(ctx context.Context, id string) (*dto.BankResponse, error) {
	bank, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrNotFound
	}
	return toBankResponse(bank), nil
}

// List lista cuentas bancarias paginadas.
func (uc *BankUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.BankResponse, error) {
	page.DefaultPage()
	banks, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankResponse, 0, len(banks))
	for _, b := range banks {
		items = append(items, *toBankResponse(b))
	}
	return items, nil
}

// Update actualiza los datos de la cuenta bancaria.
func (uc *BankUseCase) Update(ctx context.Context, id string, req *dto.SaveBankRequest) (*dto.BankResponse, error) {
	if err := validateBank(req); err != nil {
		return nil, err
	}
	bank, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrNotFound
	}
	bank.Name = req.Name
	bank.Address = req.Address
	bank.Code = req.Code
	bank.SwiftCode = req.SwiftCode
	bank.IBANCode = req.IBANCode
	bank.Currency = req.Currency
	bank.AccountNumber = req.AccountNumber
	bank.Type = req.Type
	bank.UpdatedAt = time.Now()
	if err := uc.repo.Update(bank); err != nil {
		return nil, err
	}
	return toBankResponse(bank), nil
}

// Delete elimina la cuenta bancaria.
func (uc *BankUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(id)
}

func validateBank(req *dto.SaveBankRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ErrInvalidInput
	}
	if req.Type != entity.BankTypeCustomer && req.Type != entity.BankTypeCompany {
		return domain.ErrInvalidInput
	}
	return nil
}

func toBankResponse(b *entity.Bank) *dto.BankResponse {
	return &dto.BankResponse{
		ID:            b.ID,
		Name:          b.Name,
		Address:       b.Address,
		Code:          b.Code,
		SwiftCode:     b.SwiftCode,
		IBANCode:      b.IBANCode,
		Currency:      b.Currency,
		AccountNumber: b.AccountNumber,
		Type:          b.Type,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
