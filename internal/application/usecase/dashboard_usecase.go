package usecase

import (
	"sync"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// DashboardUseCase contadores del panel por empresa.
type DashboardUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, categories: categories}
}

// Stats cuenta productos y categorías de la empresa. Los dos counts se lanzan
// en paralelo; si alguno falla se devuelve el primer error.
func (uc *DashboardUseCase) Stats(companyID string) (*dto.DashboardStats, error) {
	var (
		wg                      sync.WaitGroup
		products, categories    int
		productErr, categoryErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, productErr = uc.products.CountByCompany(companyID)
	}()
	go func() {
		defer wg.Done()
		categories, categoryErr = uc.categories.CountByCompany(companyID)
	}()
	wg.Wait()

	if productErr != nil {
		return nil, productErr
	}
	if categoryErr != nil {
		return nil, categoryErr
	}
	return &dto.DashboardStats{ProductsCount: products, CategoriesCount: categories}, nil
}
