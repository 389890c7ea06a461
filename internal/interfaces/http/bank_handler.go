package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/application/usecase"
	"github.com/facturia/billing-api/internal/domain"
)

// BankHandler maneja el CRUD de cuentas bancarias (protegido).
type BankHandler struct {
	uc *usecase.BankUseCase
}

// NewBankHandler construye el handler.
func NewBankHandler(uc *usecase.BankUseCase) *BankHandler {
	return &BankHandler{uc: uc}
}

// Create crea una cuenta bancaria.
// POST /api/banks
func (h *BankHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveBankRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bank, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return bankError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bank)
}

// List lista cuentas bancarias.
// GET /api/banks
func (h *BankHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), page)
	if err != nil {
		return bankError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene una cuenta bancaria.
// GET /api/banks/:id
func (h *BankHandler) GetByID(c *fiber.Ctx) error {
	bank, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return bankError(c, err)
	}
	return c.JSON(bank)
}

// Update actualiza una cuenta bancaria.
// PUT /api/banks/:id
func (h *BankHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveBankRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bank, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return bankError(c, err)
	}
	return c.JSON(bank)
}

// Delete elimina una cuenta bancaria. Sin cascada: los bancos no tienen relaciones.
// DELETE /api/banks/:id
func (h *BankHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return bankError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "banco eliminado", ID: id})
}

func bankError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "banco no encontrado"})
	}
	return internalError(c, err)
}
