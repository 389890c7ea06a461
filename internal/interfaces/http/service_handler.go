package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/facturia/billing-api/internal/application/billing"
	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/application/usecase"
	"github.com/facturia/billing-api/internal/domain"
)

// ServiceHandler maneja el CRUD de servicios contratados (protegido, por tenant).
type ServiceHandler struct {
	uc      *usecase.ServiceUseCase
	cascade *billing.CascadeUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase, cascade *billing.CascadeUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc, cascade: cascade}
}

// Create crea un servicio.
// POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.Create(c.Context(), GetCompanyID(c), &in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// List lista los servicios de la empresa, fecha de inicio más reciente primero.
// GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), GetCompanyID(c), page)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un servicio.
// GET /api/services/:id
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	service, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(service)
}

// Update actualiza un servicio.
// PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), &in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(service)
}

// Delete elimina el servicio y las líneas de factura que lo referencian.
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.cascade.DeleteService(c.Context(), GetCompanyID(c), id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "servicio eliminado", ID: id})
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio o cliente no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return internalError(c, err)
}
