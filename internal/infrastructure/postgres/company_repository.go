package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, owner_id, name, three_words, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.OwnerID, company.Name, company.ThreeWords,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, owner_id, name, three_words, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.ThreeWords, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByIDAndOwner obtiene una empresa solo si pertenece al owner indicado (aislamiento de tenant).
func (r *CompanyRepo) GetByIDAndOwner(id, ownerID string) (*entity.Company, error) {
	query := `
		SELECT id, owner_id, name, three_words, created_at, updated_at
		FROM companies WHERE id = $1 AND owner_id = $2`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.ThreeWords, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by owner: %w", err)
	}
	return &c, nil
}

// ListByOwner lista las empresas de un vendedor, más recientes primero.
func (r *CompanyRepo) ListByOwner(ownerID string) ([]*entity.Company, error) {
	query := `
		SELECT id, owner_id, name, three_words, created_at, updated_at
		FROM companies WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.ThreeWords, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateThreeWords guarda las tres palabras del negocio. El WHERE incluye owner_id:
// solo el dueño puede modificar su empresa.
func (r *CompanyRepo) UpdateThreeWords(id, ownerID string, words []string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE companies SET three_words = $3, updated_at = now() WHERE id = $1 AND owner_id = $2`,
		id, ownerID, words,
	)
	if err != nil {
		return fmt.Errorf("update three_words: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update three_words: empresa no encontrada para el owner")
	}
	return nil
}
