package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
)

// StorefrontHandler vistas públicas de la vitrina (sin autenticación).
type StorefrontHandler struct {
	uc *usecase.StorefrontUseCase
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(uc *usecase.StorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// Seller godoc
// @Summary      Perfil público de un vendedor con sus empresas
// @Tags         storefront
// @Produce      json
// @Param        user_id  path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{user_id} [get]
func (h *StorefrontHandler) Seller(c *fiber.Ctx) error {
	out, err := h.uc.Seller(c.Params("user_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SellerProduct godoc
// @Summary      Detalle público de un producto de un vendedor
// @Tags         storefront
// @Produce      json
// @Param        user_id  path  string  true  "ID del vendedor"
// @Param        id       path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{user_id}/products/{id} [get]
func (h *StorefrontHandler) SellerProduct(c *fiber.Ctx) error {
	out, err := h.uc.SellerProduct(c.Params("user_id"), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Company godoc
// @Summary      Vitrina pública de una empresa (empresa + productos)
// @Tags         storefront
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.StorefrontResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storefront/{company_id} [get]
func (h *StorefrontHandler) Company(c *fiber.Ctx) error {
	out, err := h.uc.CompanyStorefront(c.Params("company_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
