package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategory(repo *fakeCategoryRepo, userID, companyID, name string) string {
	id := uuid.New().String()
	repo.categories[id] = &entity.Category{
		ID: id, CompanyID: companyID, UserID: userID, Name: name, CreatedAt: time.Now(),
	}
	return id
}

func TestCreateProduct_ExitoConCategorias(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	cache := newFakeCache()
	uc := NewProductUseCase(products, categories, cache, testLogger())

	cat1 := seedCategory(categories, "user-1", "co-1", "Bebidas")
	cat2 := seedCategory(categories, "user-1", "co-1", "Postres")

	state := uc.CreateProduct("user-1", dto.CreateProductInput{
		Name:        "Limonada",
		Description: "Natural",
		Price:       "3500",
		ImageURLs:   []string{"https://cdn.example.com/limonada.png", ""},
		CategoryIDs: []string{cat1, cat2, ""},
		CompanyID:   "co-1",
	})

	require.True(t, state.IsSuccess(), state.Message)
	require.NotEmpty(t, state.NewProductID)
	assert.Len(t, products.links[state.NewProductID], 2)
	assert.True(t, cache.wasInvalidated(TagProducts("co-1")))

	saved, _ := products.GetByID(state.NewProductID)
	require.NotNil(t, saved)
	assert.True(t, saved.Price.Equal(decimal.NewFromInt(3500)))
	assert.Equal(t, []string{"https://cdn.example.com/limonada.png"}, saved.ImageLinks)
}

func TestCreateProduct_UUIDMalformadoRechazaAntesDeEscribir(t *testing.T) {
	products := newFakeProductRepo()
	uc := NewProductUseCase(products, newFakeCategoryRepo(), newFakeCache(), testLogger())

	state := uc.CreateProduct("user-1", dto.CreateProductInput{
		Name:        "Limonada",
		Price:       "3500",
		CategoryIDs: []string{"no-es-un-uuid"},
		CompanyID:   "co-1",
	})

	assert.Equal(t, dto.CodeValidation, state.Code)
	assert.NotEmpty(t, state.Errors["categories"])
	// El id malformado rechaza la petición completa antes de cualquier insert.
	assert.Empty(t, state.NewProductID)
	assert.Empty(t, products.products)
}

func TestCreateProduct_FalloParcialEnVinculo(t *testing.T) {
	products := newFakeProductRepo()
	products.linkErr = errors.New("connection reset")
	categories := newFakeCategoryRepo()
	uc := NewProductUseCase(products, categories, newFakeCache(), testLogger())

	cat1 := seedCategory(categories, "user-1", "co-1", "Bebidas")
	cat2 := seedCategory(categories, "user-1", "co-1", "Postres")

	state := uc.CreateProduct("user-1", dto.CreateProductInput{
		Name:        "Limonada",
		Price:       "3500",
		CategoryIDs: []string{cat1, cat2},
		CompanyID:   "co-1",
	})

	// El producto quedó insertado pero sin vínculos: estado PARTIAL, no rollback.
	assert.Equal(t, dto.CodePartial, state.Code)
	require.NotEmpty(t, state.NewProductID, "el id del producto persiste para la vía de reparación")
	saved, _ := products.GetByID(state.NewProductID)
	assert.NotNil(t, saved)
	assert.Empty(t, products.links[state.NewProductID])
}

func TestCreateProduct_CategoriasAjenasNoVinculan(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	uc := NewProductUseCase(products, categories, newFakeCache(), testLogger())

	ajena := seedCategory(categories, "otro-user", "co-2", "Bebidas")

	state := uc.CreateProduct("user-1", dto.CreateProductInput{
		Name:        "Limonada",
		Price:       "3500",
		CategoryIDs: []string{ajena},
		CompanyID:   "co-1",
	})

	// Ninguna categoría pasó la verificación de pertenencia: error de categorías,
	// pero el producto ya insertado persiste.
	assert.Equal(t, dto.CodeValidation, state.Code)
	assert.NotEmpty(t, state.Errors["categories"])
	require.NotEmpty(t, state.NewProductID)
	saved, _ := products.GetByID(state.NewProductID)
	assert.NotNil(t, saved)
	assert.Empty(t, products.links[state.NewProductID])
}

func TestCreateProduct_PrecioInvalido(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo(), newFakeCache(), testLogger())

	for _, price := range []string{"", "abc", "0", "-5"} {
		state := uc.CreateProduct("user-1", dto.CreateProductInput{
			Name: "Limonada", Price: price, CompanyID: "co-1",
		})
		assert.Equalf(t, dto.CodeValidation, state.Code, "precio %q", price)
		assert.NotEmptyf(t, state.Errors["price"], "precio %q", price)
	}
}

func TestLinkCategories_ReparaProductoSinVinculos(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	cache := newFakeCache()
	uc := NewProductUseCase(products, categories, cache, testLogger())

	productID := uuid.New().String()
	products.products[productID] = &entity.Product{
		ID: productID, CompanyID: "co-1", UserID: "user-1", Name: "Limonada",
		Price: decimal.NewFromInt(3500), CreatedAt: time.Now(),
	}
	cat := seedCategory(categories, "user-1", "co-1", "Bebidas")

	state := uc.LinkCategories("user-1", productID, dto.LinkCategoriesInput{CategoryIDs: []string{cat}})

	require.True(t, state.IsSuccess(), state.Message)
	assert.Equal(t, []string{cat}, products.links[productID])
	assert.True(t, cache.wasInvalidated(TagProducts("co-1")))
}

func TestLinkCategories_ProductoAjeno(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	uc := NewProductUseCase(products, categories, newFakeCache(), testLogger())

	productID := uuid.New().String()
	products.products[productID] = &entity.Product{ID: productID, CompanyID: "co-1", UserID: "otro"}
	cat := seedCategory(categories, "user-1", "co-1", "Bebidas")

	state := uc.LinkCategories("user-1", productID, dto.LinkCategoriesInput{CategoryIDs: []string{cat}})

	assert.Equal(t, dto.CodeUnauthorized, state.Code)
	assert.Empty(t, products.links[productID])
}

func TestLinkCategories_FalloNoEsParcial(t *testing.T) {
	products := newFakeProductRepo()
	products.linkErr = errors.New("connection reset")
	categories := newFakeCategoryRepo()
	uc := NewProductUseCase(products, categories, newFakeCache(), testLogger())

	productID := uuid.New().String()
	products.products[productID] = &entity.Product{ID: productID, CompanyID: "co-1", UserID: "user-1"}
	cat := seedCategory(categories, "user-1", "co-1", "Bebidas")

	state := uc.LinkCategories("user-1", productID, dto.LinkCategoriesInput{CategoryIDs: []string{cat}})

	// En la vía de reparación no se escribió nada nuevo: DB_ERROR, no PARTIAL.
	assert.Equal(t, dto.CodeDBError, state.Code)
}

func TestListProducts_Memoizado(t *testing.T) {
	products := newFakeProductRepo()
	cache := newFakeCache()
	uc := NewProductUseCase(products, newFakeCategoryRepo(), cache, testLogger())

	products.products["p1"] = &entity.Product{ID: "p1", CompanyID: "co-1", Name: "Limonada"}

	first, err := uc.ListProducts("co-1")
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	products.products["p2"] = &entity.Product{ID: "p2", CompanyID: "co-1", Name: "Arepa"}
	second, err := uc.ListProducts("co-1")
	require.NoError(t, err)
	assert.Len(t, second.Items, 1, "la segunda lectura sale del caché")
}
