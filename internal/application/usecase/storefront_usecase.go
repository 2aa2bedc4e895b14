package usecase

import (
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// StorefrontUseCase lecturas públicas de la vitrina (sin autenticación).
type StorefrontUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	products  repository.ProductRepository
	cache     ViewCache
}

// NewStorefrontUseCase construye el caso de uso.
func NewStorefrontUseCase(users repository.UserRepository, companies repository.CompanyRepository, products repository.ProductRepository, cache ViewCache) *StorefrontUseCase {
	return &StorefrontUseCase{users: users, companies: companies, products: products, cache: cache}
}

// Seller devuelve el perfil público de un vendedor y sus empresas.
func (uc *StorefrontUseCase) Seller(userID string) (*dto.SellerResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	companies, err := uc.companies.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.SellerResponse{
		Seller:    dto.PublicProfile{ID: user.ID, Username: user.Username},
		Companies: items,
	}, nil
}

// CompanyStorefront devuelve la vitrina pública de una empresa: la empresa y
// sus productos con categorías. Memoizado bajo los tags de productos y
// categorías de la empresa (cualquiera de las dos acciones la invalida).
func (uc *StorefrontUseCase) CompanyStorefront(companyID string) (*dto.StorefrontResponse, error) {
	key := "storefront:" + companyID
	if v, ok := uc.cache.Get(key); ok {
		return v.(*dto.StorefrontResponse), nil
	}

	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.products.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	out := &dto.StorefrontResponse{Company: *toCompanyResponse(company), Products: items}
	uc.cache.Set(key, out, TagProducts(companyID), TagCategories(companyID))
	return out, nil
}

// SellerProduct devuelve el detalle público de un producto de un vendedor.
// El producto debe pertenecer al vendedor de la URL; si no, 404 (no se filtra
// la existencia de productos ajenos).
func (uc *StorefrontUseCase) SellerProduct(sellerID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != sellerID {
		return nil, domain.ErrNotFound
	}
	categories, err := uc.products.CategoriesOf(productID)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(&entity.ProductWithCategories{Product: *product, Categories: categories})
	return &out, nil
}
