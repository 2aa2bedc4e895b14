package repository

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// ListByCompany devuelve los productos de la empresa, más recientes primero,
	// con sus categorías vinculadas (vista denormalizada).
	ListByCompany(companyID string) ([]*entity.ProductWithCategories, error)
	// LinkCategories inserta un vínculo por cada categoría. Devuelve
	// domain.ErrDuplicate si alguna pareja (producto, categoría) ya existe.
	LinkCategories(productID string, categoryIDs []string) error
	CategoriesOf(productID string) ([]entity.CategoryRef, error)
	CountByCompany(companyID string) (int, error)
}
