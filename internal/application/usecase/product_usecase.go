package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/schema"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// ProductUseCase acciones y lecturas de productos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      ViewCache
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, cache ViewCache, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, cache: cache, log: log}
}

// CreateProduct crea un producto y, si hay categorías seleccionadas, las vincula.
//
// Las dos escrituras (insert de producto, insert de vínculos) son independientes
// y NO van en una transacción: si la verificación o el vínculo falla después del
// insert, el producto queda sin categorías y eso se reporta como PARTIAL en vez
// de deshacerse. La vía de reparación es LinkCategories sobre el producto ya
// creado. Esta ventana de inconsistencia es una decisión, no un descuido.
func (uc *ProductUseCase) CreateProduct(userID string, in dto.CreateProductInput) *dto.CreateProductState {
	if userID == "" {
		return &dto.CreateProductState{ActionState: dto.ErrorState(dto.CodeUnauthorized, "Autenticación requerida.")}
	}

	// Tolerar claves ausentes o repetidas vacías del formulario.
	imageURLs := dropEmpty(in.ImageURLs)
	categoryIDs := dropEmpty(in.CategoryIDs)

	form, fieldErrs := schema.ParseProduct(in.Name, in.Description, in.Price, imageURLs)
	if fieldErrs != nil {
		return &dto.CreateProductState{ActionState: dto.ValidationState("Validación del producto fallida.", fieldErrs)}
	}

	// Chequeo superficial de forma: todo id enviado debe ser un UUID bien formado.
	// Un id malformado rechaza la petición completa antes de cualquier escritura.
	for _, id := range categoryIDs {
		if _, err := uuid.Parse(id); err != nil {
			return &dto.CreateProductState{ActionState: dto.ActionState{
				Message: "Formato de categoría inválido.",
				Type:    dto.TypeError,
				Code:    dto.CodeValidation,
				Errors:  map[string][]string{"categories": {"Formato de ID de categoría inválido."}},
			}}
		}
	}

	if in.CompanyID == "" {
		return &dto.CreateProductState{ActionState: dto.ErrorState(dto.CodeMissingReference, "Falta el ID de la empresa.")}
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		UserID:      userID,
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		ImageLinks:  form.ImageLinks,
		CreatedAt:   time.Now(),
	}
	if err := uc.products.Create(product); err != nil {
		uc.log.Error().Err(err).Str("company_id", in.CompanyID).Msg("insert de producto falló")
		return &dto.CreateProductState{ActionState: dto.ActionState{
			Message: fmt.Sprintf("Error de base de datos creando el producto: %v", err),
			Type:    dto.TypeError,
			Code:    dto.CodeDBError,
			Errors:  map[string][]string{"database": {err.Error()}},
		}}
	}

	if len(categoryIDs) > 0 {
		if state := uc.linkVerified(userID, product.ID, categoryIDs); state != nil {
			// El producto ya existe; se devuelve su id para la vía de reparación.
			state.NewProductID = product.ID
			return state
		}
	}

	uc.cache.Invalidate(TagProducts(in.CompanyID))

	return &dto.CreateProductState{
		ActionState:  dto.SuccessState(fmt.Sprintf("¡Producto %q creado con éxito!", form.Name)),
		NewProductID: product.ID,
	}
}

// linkVerified re-verifica la pertenencia de las categorías enviadas, filtra a
// las realmente propias y crea un vínculo por cada una. Devuelve nil si todo
// salió bien; si no, el ActionState del fallo (el producto ya insertado persiste).
func (uc *ProductUseCase) linkVerified(userID, productID string, categoryIDs []string) *dto.CreateProductState {
	owned, err := uc.categories.FilterOwnedByUser(userID, categoryIDs)
	if err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("verificación de categorías falló")
		return &dto.CreateProductState{ActionState: dto.ActionState{
			Message: "Error verificando las categorías seleccionadas.",
			Type:    dto.TypeError,
			Code:    dto.CodeDBError,
			Errors:  map[string][]string{"categories": {"No se pudieron verificar las categorías seleccionadas."}},
		}}
	}

	ownedSet := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}
	var toLink []string
	for _, id := range categoryIDs {
		if _, ok := ownedSet[id]; ok {
			toLink = append(toLink, id)
		}
	}

	if len(toLink) == 0 {
		// Se enviaron categorías pero ninguna pertenece al usuario.
		return &dto.CreateProductState{ActionState: dto.ActionState{
			Message: "Las categorías seleccionadas no son válidas o no te pertenecen.",
			Type:    dto.TypeError,
			Code:    dto.CodeValidation,
			Errors:  map[string][]string{"categories": {"Categorías seleccionadas inválidas."}},
		}}
	}

	if err := uc.products.LinkCategories(productID, toLink); err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("vínculo de categorías falló tras insertar el producto")
		return &dto.CreateProductState{ActionState: dto.ActionState{
			Message: fmt.Sprintf("Producto creado, pero no se pudieron vincular las categorías: %v", err),
			Type:    dto.TypeError,
			Code:    dto.CodePartial,
			Errors:  map[string][]string{"database": {fmt.Sprintf("No se pudieron vincular las categorías: %v", err)}},
		}}
	}
	return nil
}

// LinkCategories vincula categorías a un producto existente del usuario.
// Es la vía de reparación para el estado parcial (producto sin categorías).
func (uc *ProductUseCase) LinkCategories(userID, productID string, in dto.LinkCategoriesInput) dto.ActionState {
	if userID == "" {
		return dto.ErrorState(dto.CodeUnauthorized, "Autenticación requerida.")
	}
	categoryIDs := dropEmpty(in.CategoryIDs)
	if len(categoryIDs) == 0 {
		return dto.ErrorState(dto.CodeValidation, "No se enviaron categorías.")
	}
	for _, id := range categoryIDs {
		if _, err := uuid.Parse(id); err != nil {
			return dto.ErrorState(dto.CodeValidation, "Formato de ID de categoría inválido.")
		}
	}

	product, err := uc.products.GetByID(productID)
	if err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("lookup de producto falló")
		return dto.ErrorState(dto.CodeDBError, fmt.Sprintf("Error de base de datos: %v", err))
	}
	if product == nil {
		return dto.ErrorState(dto.CodeNotFound, "Producto no encontrado.")
	}
	if product.UserID != userID {
		return dto.ErrorState(dto.CodeUnauthorized, "El producto no te pertenece.")
	}

	state := uc.linkVerified(userID, productID, categoryIDs)
	if state != nil {
		if state.Code == dto.CodePartial {
			// En la vía de reparación un fallo de vínculo no es "parcial":
			// no se escribió nada nuevo.
			state.Code = dto.CodeDBError
		}
		return state.ActionState
	}

	uc.cache.Invalidate(TagProducts(product.CompanyID))
	return dto.SuccessState("Categorías vinculadas.")
}

// ListProducts lista los productos de una empresa con sus categorías,
// memoizado bajo el tag products:<companyID>.
func (uc *ProductUseCase) ListProducts(companyID string) (*dto.ProductListResponse, error) {
	key := "products:" + companyID
	if v, ok := uc.cache.Get(key); ok {
		return v.(*dto.ProductListResponse), nil
	}

	list, err := uc.products.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	out := &dto.ProductListResponse{Items: items}
	uc.cache.Set(key, out, TagProducts(companyID))
	return out, nil
}

// GetProduct obtiene un producto con sus categorías (vista de detalle, sin caché).
func (uc *ProductUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	categories, err := uc.products.CategoriesOf(id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(&entity.ProductWithCategories{Product: *product, Categories: categories})
	return &out, nil
}

func toProductResponse(p *entity.ProductWithCategories) dto.ProductResponse {
	categories := make([]dto.CategoryRef, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, dto.CategoryRef{ID: c.ID, Name: c.Name})
	}
	return dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageLinks:  p.ImageLinks,
		Categories:  categories,
		CreatedAt:   p.CreatedAt,
	}
}

// dropEmpty filtra entradas vacías de una lista de claves repetidas del formulario.
func dropEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
