package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryUC(categories *fakeCategoryRepo, cache *fakeCache) *CategoryUseCase {
	tx := &fakeTxRunner{categories: categories, products: newFakeProductRepo()}
	return NewCategoryUseCase(categories, tx, cache, testLogger())
}

func TestCreateCategory_Exito(t *testing.T) {
	repo := newFakeCategoryRepo()
	cache := newFakeCache()
	uc := newCategoryUC(repo, cache)

	state := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-1"})

	require.True(t, state.IsSuccess(), state.Message)
	require.NotNil(t, state.NewCategory)
	assert.NotEmpty(t, state.NewCategory.ID)
	assert.Equal(t, "Bebidas", state.NewCategory.Name)
	// La escritura invalida el listado y el selector del formulario de producto.
	assert.True(t, cache.wasInvalidated(TagCategories("co-1")))
	assert.True(t, cache.wasInvalidated(TagProductCreate("co-1")))
}

func TestCreateCategory_SinAutenticacion(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo(), newFakeCache())

	state := uc.CreateCategory("", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-1"})

	assert.Equal(t, dto.CodeUnauthorized, state.Code)
	assert.Nil(t, state.NewCategory)
}

func TestCreateCategory_ValidacionDeNombre(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo(), newFakeCache())

	cases := []struct {
		name  string
		input string
	}{
		{"muy corto", "A"},
		{"muy largo", "Categoría con un nombre larguísimo que supera los cincuenta caracteres permitidos"},
		{"vacío", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: tc.input, CompanyID: "co-1"})
			assert.Equal(t, dto.CodeValidation, state.Code)
			assert.NotEmpty(t, state.Errors["name"])
		})
	}
}

func TestCreateCategory_SinEmpresa(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo(), newFakeCache())

	state := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas"})

	assert.Equal(t, dto.CodeMissingReference, state.Code)
}

func TestCreateCategory_DuplicadoDistintoDeErrorGenerico(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo, newFakeCache())

	first := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-1"})
	require.True(t, first.IsSuccess())

	dup := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-1"})

	// La violación de unicidad se reporta como DUPLICATE con el valor en
	// conflicto, nunca como DB_ERROR.
	assert.Equal(t, dto.CodeDuplicate, dup.Code)
	assert.Contains(t, dup.Message, `"Bebidas"`)
	assert.NotEmpty(t, dup.Errors["name"])
}

func TestCreateCategory_MismoNombreEnOtraEmpresa(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo, newFakeCache())

	first := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-1"})
	require.True(t, first.IsSuccess())

	// La unicidad es por empresa: otra empresa puede repetir el nombre.
	second := uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-2"})
	assert.True(t, second.IsSuccess(), second.Message)
}

func TestDeleteCategory_BorraVinculosYCategoria(t *testing.T) {
	repo := newFakeCategoryRepo()
	cache := newFakeCache()
	uc := newCategoryUC(repo, cache)

	catID := uuid.New().String()
	repo.categories[catID] = &entity.Category{
		ID: catID, CompanyID: "co-1", UserID: "user-1", Name: "Bebidas", CreatedAt: time.Now(),
	}

	state := uc.DeleteCategory(context.Background(), "user-1", catID)

	require.True(t, state.IsSuccess(), state.Message)
	got, _ := repo.GetByID(catID)
	assert.Nil(t, got)
	assert.True(t, cache.wasInvalidated(TagCategories("co-1")))
	assert.True(t, cache.wasInvalidated(TagProducts("co-1")))
}

func TestDeleteCategory_AjenaRechazada(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo, newFakeCache())

	catID := uuid.New().String()
	repo.categories[catID] = &entity.Category{ID: catID, CompanyID: "co-1", UserID: "otro", Name: "Bebidas"}

	state := uc.DeleteCategory(context.Background(), "user-1", catID)

	assert.Equal(t, dto.CodeUnauthorized, state.Code)
	got, _ := repo.GetByID(catID)
	assert.NotNil(t, got, "la categoría ajena no debe borrarse")
}

func TestListCategories_Memoizado(t *testing.T) {
	repo := newFakeCategoryRepo()
	cache := newFakeCache()
	uc := newCategoryUC(repo, cache)

	require.True(t, uc.CreateCategory("user-1", dto.CreateCategoryInput{Name: "Bebidas", CompanyID: "co-1"}).IsSuccess())

	first, err := uc.ListCategories("co-1")
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	// La segunda lectura sale del caché aunque el repo cambie por debajo.
	repo.categories["extra"] = &entity.Category{ID: "extra", CompanyID: "co-1", Name: "Postres"}
	second, err := uc.ListCategories("co-1")
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
}
