package repository

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByIDAndOwner(id, ownerID string) (*entity.Company, error)
	ListByOwner(ownerID string) ([]*entity.Company, error)
	UpdateThreeWords(id, ownerID string, words []string) error
}
