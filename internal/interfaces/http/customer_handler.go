package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/facturia/billing-api/internal/application/billing"
	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/application/usecase"
	"github.com/facturia/billing-api/internal/domain"
)

// CustomerHandler maneja el CRUD de clientes (protegido, por tenant).
// El delete cae en la cascada centralizada: servicios, facturas y líneas
// del cliente se van con él.
type CustomerHandler struct {
	uc      *usecase.CustomerUseCase
	cascade *billing.CascadeUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, cascade *billing.CascadeUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, cascade: cascade}
}

// Create crea un cliente.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(c.Context(), GetCompanyID(c), &in)
	if err != nil {
		return customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List lista los clientes de la empresa.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), GetCompanyID(c), page)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un cliente.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(customer)
}

// Update actualiza un cliente.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), &in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(customer)
}

// Delete elimina el cliente con todos sus servicios, facturas y líneas.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.cascade.DeleteCustomer(c.Context(), GetCompanyID(c), id); err != nil {
		return customerError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "cliente eliminado", ID: id})
}

func customerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return internalError(c, err)
}
