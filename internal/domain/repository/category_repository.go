package repository

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create devuelve domain.ErrDuplicate si el nombre ya existe en la empresa (23505).
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	ListByCompany(companyID string) ([]*entity.Category, error)
	// FilterOwnedByUser devuelve el subconjunto de ids que corresponden a
	// categorías realmente creadas por el usuario (chequeo de pertenencia).
	FilterOwnedByUser(userID string, ids []string) ([]string, error)
	Delete(id string) error
	// DeleteLinksByCategory elimina los vínculos product_categories de una categoría.
	DeleteLinksByCategory(categoryID string) error
	CountByCompany(companyID string) (int, error)
}
