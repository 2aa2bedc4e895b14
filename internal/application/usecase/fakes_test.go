package usecase

import (
	"context"
	"sync"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

var (
	_ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.CompanyRepository  = (*fakeCompanyRepo)(nil)
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ ViewCache                     = (*fakeCache)(nil)
	_ CatalogTxRunner               = (*fakeTxRunner)(nil)
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ── Fakes en memoria para los puertos de persistencia ────────────────────────

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category // por id
	createErr  error
	filterErr  error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	// Unicidad por (empresa, nombre), como el índice de la tabla.
	for _, existing := range r.categories {
		if existing.CompanyID == c.CompanyID && existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.categories {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FilterOwnedByUser(userID string, ids []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.filterErr != nil {
		return nil, r.filterErr
	}
	var owned []string
	for _, id := range ids {
		if c, ok := r.categories[id]; ok && c.UserID == userID {
			owned = append(owned, id)
		}
	}
	return owned, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) DeleteLinksByCategory(categoryID string) error { return nil }

func (r *fakeCategoryRepo) CountByCompany(companyID string) (int, error) {
	list, _ := r.ListByCompany(companyID)
	return len(list), nil
}

type fakeProductRepo struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	links     map[string][]string // productID -> categoryIDs
	createErr error
	linkErr   error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}, links: map[string][]string{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id], nil
}

func (r *fakeProductRepo) ListByCompany(companyID string) ([]*entity.ProductWithCategories, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ProductWithCategories
	for _, p := range r.products {
		if p.CompanyID == companyID {
			out = append(out, &entity.ProductWithCategories{Product: *p})
		}
	}
	return out, nil
}

func (r *fakeProductRepo) LinkCategories(productID string, categoryIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.linkErr != nil {
		return r.linkErr
	}
	r.links[productID] = append(r.links[productID], categoryIDs...)
	return nil
}

func (r *fakeProductRepo) CategoriesOf(productID string) ([]entity.CategoryRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.CategoryRef
	for _, id := range r.links[productID] {
		out = append(out, entity.CategoryRef{ID: id})
	}
	return out, nil
}

func (r *fakeProductRepo) CountByCompany(companyID string) (int, error) {
	list, _ := r.ListByCompany(companyID)
	return len(list), nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
	words     map[string][]string
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}, words: map[string][]string{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByIDAndOwner(id, ownerID string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.companies[id]
	if c == nil || c.OwnerID != ownerID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCompanyRepo) ListByOwner(ownerID string) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Company
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) UpdateThreeWords(id, ownerID string, words []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.companies[id]
	if c == nil || c.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	c.ThreeWords = words
	r.words[id] = words
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

// ── Fakes para caché y transacciones ─────────────────────────────────────────

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string]any
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]any{}}
}

func (c *fakeCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(key string, value any, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *fakeCache) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, tags...)
}

func (c *fakeCache) wasInvalidated(tag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.invalidated {
		if t == tag {
			return true
		}
	}
	return false
}

// fakeTxRunner ejecuta la función directamente con los repos dados, sin
// transacción real.
type fakeTxRunner struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	return fn(t.categories, t.products)
}
