package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
)

// HeaderCompanyCode header que identifica el tenant en cada request protegido.
const HeaderCompanyCode = "x-company-code"

// companyResolver resuelve el ID de la empresa a partir de su código.
// Lo implementa usecase.CompanyUseCase.
type companyResolver interface {
	ResolveCode(ctx context.Context, code string) (string, error)
}

// CompanyMiddleware resuelve el tenant por el header x-company-code y deja el
// company_id en c.Locals. Distingue tres fallas:
//
//	header ausente        → 400 MISSING_COMPANY_CODE
//	código desconocido    → 400 INVALID_COMPANY_CODE
//	error de la búsqueda  → 500 COMPANY_LOOKUP_FAILED
func CompanyMiddleware(resolver companyResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Get(HeaderCompanyCode))
		if code == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY_CODE", Message: "header x-company-code requerido"})
		}
		companyID, err := resolver.ResolveCode(c.Context(), code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_COMPANY_CODE", Message: "código de empresa desconocido"})
			}
			log.Error().Err(err).Str("company_code", code).Msg("no se pudo resolver la empresa")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "COMPANY_LOOKUP_FAILED", Message: "no se pudo resolver la empresa"})
		}
		c.Locals(LocalCompanyID, companyID)
		return c.Next()
	}
}

// GetCompanyID devuelve el CompanyID del contexto (después de CompanyMiddleware).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
