package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones del onboarding de empresas (protegido).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa (onboarding paso 1)
// @Tags         companies
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        companyName  formData  string  true  "Nombre de la empresa"
// @Success      200  {object}  dto.CreateCompanyState
// @Failure      400  {object}  dto.CreateCompanyState
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyInput
	// Los campos ausentes o malformados quedan en cero; la acción los valida.
	_ = c.BodyParser(&in)
	state := h.uc.CreateCompany(GetUserID(c), in)
	return c.Status(actionStatus(state.ActionState)).JSON(state)
}

// SaveWords godoc
// @Summary      Guardar las tres palabras del negocio (onboarding paso 2)
// @Tags         companies
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id     path      string  true  "ID de la empresa"
// @Param        word1  formData  string  true  "Primera palabra"
// @Param        word2  formData  string  true  "Segunda palabra"
// @Param        word3  formData  string  true  "Tercera palabra"
// @Success      200  {object}  dto.ActionState
// @Failure      404  {object}  dto.ActionState
// @Router       /api/companies/{id}/words [put]
func (h *CompanyHandler) SaveWords(c *fiber.Ctx) error {
	var in dto.ThreeWordsInput
	_ = c.BodyParser(&in)
	state := h.uc.SaveThreeWords(GetUserID(c), c.Params("id"), in)
	return c.Status(actionStatus(state)).JSON(state)
}

// List godoc
// @Summary      Listar mis empresas
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
