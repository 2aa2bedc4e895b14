package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto (con vínculo opcional a categorías)
// @Description  Las claves image_urls y category_ids se repiten por cada valor.
// @Description  Si el vínculo a categorías falla, el producto ya creado persiste
// @Description  y la respuesta lleva code=PARTIAL con el new_product_id para reparar.
// @Tags         products
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name          formData  string  true   "Nombre (mín. 3 caracteres)"
// @Param        description   formData  string  false  "Descripción"
// @Param        price         formData  string  true   "Precio (decimal positivo)"
// @Param        image_urls    formData  string  false  "URL de imagen ya subida (repetible)"
// @Param        category_ids  formData  string  false  "ID de categoría (repetible)"
// @Param        companyId     formData  string  true   "ID de la empresa"
// @Success      200  {object}  dto.CreateProductState
// @Failure      400  {object}  dto.CreateProductState
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		CompanyID:   c.FormValue("companyId"),
	}
	// Claves repetidas del formulario: BodyParser de Fiber no las junta en
	// slices para form-encoded, así que se leen del cuerpo crudo.
	if form, err := c.MultipartForm(); err == nil {
		in.ImageURLs = form.Value["image_urls"]
		in.CategoryIDs = form.Value["category_ids"]
	} else {
		args := c.Context().PostArgs()
		for _, v := range args.PeekMulti("image_urls") {
			in.ImageURLs = append(in.ImageURLs, string(v))
		}
		for _, v := range args.PeekMulti("category_ids") {
			in.CategoryIDs = append(in.CategoryIDs, string(v))
		}
	}
	state := h.uc.CreateProduct(GetUserID(c), in)
	return c.Status(actionStatus(state.ActionState)).JSON(state)
}

// LinkCategories godoc
// @Summary      Vincular categorías a un producto existente
// @Description  Vía de reparación para un producto creado sin categorías (PARTIAL).
// @Tags         products
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id            path      string  true  "ID del producto"
// @Param        category_ids  formData  string  true  "ID de categoría (repetible)"
// @Success      200  {object}  dto.ActionState
// @Failure      404  {object}  dto.ActionState
// @Router       /api/products/{id}/categories [post]
func (h *ProductHandler) LinkCategories(c *fiber.Ctx) error {
	var in dto.LinkCategoriesInput
	for _, v := range c.Context().PostArgs().PeekMulti("category_ids") {
		in.CategoryIDs = append(in.CategoryIDs, string(v))
	}
	state := h.uc.LinkCategories(GetUserID(c), c.Params("id"), in)
	return c.Status(actionStatus(state)).JSON(state)
}

// List godoc
// @Summary      Listar productos de una empresa
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "company_id es requerido"})
	}
	out, err := h.uc.ListProducts(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}
