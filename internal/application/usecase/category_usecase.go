package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/schema"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// CategoryUseCase acciones y lecturas de categorías.
// Las acciones devuelven ActionState (nunca error crudo) y emiten invalidación
// de los tags de vista afectados tras una escritura exitosa.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	tx         CatalogTxRunner
	cache      ViewCache
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, tx CatalogTxRunner, cache ViewCache, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, tx: tx, cache: cache, log: log}
}

// CreateCategory crea una categoría para la empresa indicada.
// Orden: auth -> schema -> referencia de empresa -> insert -> invalidación.
// Un 23505 de la tabla se reporta como DUPLICATE nombrando el valor en conflicto,
// distinto de un error genérico de base de datos.
func (uc *CategoryUseCase) CreateCategory(userID string, in dto.CreateCategoryInput) *dto.CreateCategoryState {
	if userID == "" {
		return &dto.CreateCategoryState{ActionState: dto.ErrorState(dto.CodeUnauthorized, "Autenticación requerida.")}
	}

	form, fieldErrs := schema.ParseCategory(in.Name)
	if fieldErrs != nil {
		return &dto.CreateCategoryState{ActionState: dto.ValidationState("Validación fallida.", fieldErrs)}
	}

	if in.CompanyID == "" {
		return &dto.CreateCategoryState{ActionState: dto.ErrorState(dto.CodeMissingReference, "Falta el ID de la empresa.")}
	}

	category := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		UserID:    userID,
		Name:      form.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categories.Create(category); err != nil {
		if err == domain.ErrDuplicate {
			msg := fmt.Sprintf("La categoría %q ya existe.", form.Name)
			return &dto.CreateCategoryState{ActionState: dto.ActionState{
				Message: msg,
				Type:    dto.TypeError,
				Code:    dto.CodeDuplicate,
				Errors:  map[string][]string{"name": {msg}},
			}}
		}
		uc.log.Error().Err(err).Str("company_id", in.CompanyID).Msg("insert de categoría falló")
		return &dto.CreateCategoryState{ActionState: dto.ActionState{
			Message: fmt.Sprintf("Error de base de datos: %v", err),
			Type:    dto.TypeError,
			Code:    dto.CodeDBError,
			Errors:  map[string][]string{"database": {err.Error()}},
		}}
	}

	// Invalida el listado de categorías y el selector del formulario de producto.
	uc.cache.Invalidate(TagCategories(in.CompanyID), TagProductCreate(in.CompanyID))

	state := &dto.CreateCategoryState{
		ActionState: dto.SuccessState(fmt.Sprintf("¡Categoría %q creada con éxito!", form.Name)),
		NewCategory: &dto.CategoryRef{ID: category.ID, Name: category.Name},
	}
	return state
}

// DeleteCategory elimina una categoría del usuario junto con sus vínculos a
// productos, atómicamente (a diferencia de crear producto + vincular, aquí las
// dos escrituras sí van en una transacción).
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, userID, categoryID string) dto.ActionState {
	if userID == "" {
		return dto.ErrorState(dto.CodeUnauthorized, "Autenticación requerida.")
	}
	category, err := uc.categories.GetByID(categoryID)
	if err != nil {
		uc.log.Error().Err(err).Str("category_id", categoryID).Msg("lookup de categoría falló")
		return dto.ErrorState(dto.CodeDBError, fmt.Sprintf("Error de base de datos: %v", err))
	}
	if category == nil {
		return dto.ErrorState(dto.CodeNotFound, "Categoría no encontrada.")
	}
	if category.UserID != userID {
		return dto.ErrorState(dto.CodeUnauthorized, "La categoría no te pertenece.")
	}

	err = uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository) error {
		if err := categoryRepo.DeleteLinksByCategory(categoryID); err != nil {
			return err
		}
		return categoryRepo.Delete(categoryID)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("category_id", categoryID).Msg("delete de categoría falló")
		return dto.ErrorState(dto.CodeDBError, fmt.Sprintf("Error de base de datos: %v", err))
	}

	uc.cache.Invalidate(TagCategories(category.CompanyID), TagProductCreate(category.CompanyID), TagProducts(category.CompanyID))
	return dto.SuccessState("Categoría eliminada.")
}

// ListCategories lista las categorías de una empresa, memoizado con TTL fijo
// bajo el tag categories:<companyID>.
func (uc *CategoryUseCase) ListCategories(companyID string) (*dto.CategoryListResponse, error) {
	key := "categories:" + companyID
	if v, ok := uc.cache.Get(key); ok {
		return v.(*dto.CategoryListResponse), nil
	}

	list, err := uc.categories.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{
			ID:        c.ID,
			CompanyID: c.CompanyID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
		})
	}
	out := &dto.CategoryListResponse{Items: items}
	uc.cache.Set(key, out, TagCategories(companyID))
	return out, nil
}
