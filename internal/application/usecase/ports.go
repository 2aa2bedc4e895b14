package usecase

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// ViewCache memoización con TTL fijo e invalidación por tags lógicos.
// Las lecturas memoizan por clave; las acciones invalidan por tag tras escribir.
type ViewCache interface {
	Get(key string) (any, bool)
	Set(key string, value any, tags ...string)
	Invalidate(tags ...string)
}

// CatalogTxRunner ejecuta una función con repos atados a una transacción.
// Solo se usa donde la atomicidad es deliberada (borrar categoría + vínculos);
// crear producto + vincular categorías queda fuera a propósito.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Tags lógicos de invalidación, siempre por empresa.
func TagCategories(companyID string) string    { return "categories:" + companyID }
func TagProducts(companyID string) string      { return "products:" + companyID }
func TagProductCreate(companyID string) string { return "products:create:" + companyID }
