package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con sus image_links ya subidos.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, user_id, name, description, price, image_links, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.UserID, product.Name, product.Description,
		product.Price, product.ImageLinks, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, user_id, name, description, price, image_links, created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.ImageLinks, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los productos de una empresa con sus categorías, más recientes primero.
// Dos queries: productos y luego vínculos de todos los productos en bloque.
func (r *ProductRepo) ListByCompany(companyID string) ([]*entity.ProductWithCategories, error) {
	query := `
		SELECT id, company_id, user_id, name, description, price, image_links, created_at
		FROM products WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductWithCategories
	var ids []string
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.ImageLinks, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &entity.ProductWithCategories{Product: p})
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	linked, err := r.categoriesByProduct(ids)
	if err != nil {
		return nil, err
	}
	for _, pw := range list {
		pw.Categories = linked[pw.ID]
	}
	return list, nil
}

// categoriesByProduct devuelve las categorías vinculadas agrupadas por producto.
func (r *ProductRepo) categoriesByProduct(productIDs []string) (map[string][]entity.CategoryRef, error) {
	query := `
		SELECT pc.product_id, c.id, c.name
		FROM product_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.product_id = ANY($1)
		ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.CategoryRef)
	for rows.Next() {
		var productID string
		var ref entity.CategoryRef
		if err := rows.Scan(&productID, &ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		out[productID] = append(out[productID], ref)
	}
	return out, rows.Err()
}

// LinkCategories inserta un vínculo por cada categoría verificada.
// La pareja (product_id, category_id) es única: una repetición devuelve domain.ErrDuplicate.
func (r *ProductRepo) LinkCategories(productID string, categoryIDs []string) error {
	for _, catID := range categoryIDs {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`,
			productID, catID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("link category %s: %w", catID, err)
		}
	}
	return nil
}

// CategoriesOf devuelve las categorías vinculadas a un producto.
func (r *ProductRepo) CategoriesOf(productID string) ([]entity.CategoryRef, error) {
	linked, err := r.categoriesByProduct([]string{productID})
	if err != nil {
		return nil, err
	}
	return linked[productID], nil
}

// CountByCompany cuenta los productos de una empresa (stats del dashboard).
func (r *ProductRepo) CountByCompany(companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
