package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name       formData  string  true  "Nombre (2-50 caracteres)"
// @Param        companyId  formData  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CreateCategoryState
// @Failure      400  {object}  dto.CreateCategoryState
// @Failure      409  {object}  dto.CreateCategoryState
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryInput
	// Los campos ausentes o malformados quedan en cero; la acción los valida.
	_ = c.BodyParser(&in)
	state := h.uc.CreateCategory(GetUserID(c), in)
	return c.Status(actionStatus(state.ActionState)).JSON(state)
}

// Delete godoc
// @Summary      Eliminar categoría (y sus vínculos con productos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.ActionState
// @Failure      404  {object}  dto.ActionState
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	state := h.uc.DeleteCategory(c.Context(), GetUserID(c), c.Params("id"))
	return c.Status(actionStatus(state)).JSON(state)
}

// List godoc
// @Summary      Listar categorías de una empresa
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "company_id es requerido"})
	}
	out, err := h.uc.ListCategories(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
