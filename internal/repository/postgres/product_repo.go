package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invensight/internal/domain"
	"invensight/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

// groupableFields whitelists the columns DistinctValues may touch; the
// field name is interpolated into the query and must never come from
// request input directly.
var groupableFields = map[string]bool{
	"category":       true,
	"supplier":       true,
	"customer_email": true,
}

func (r *productRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, fmt.Errorf("productRepo.Count: %w", err)
	}
	return total, nil
}

func (r *productRepo) DistinctValues(ctx context.Context, field string) ([]string, error) {
	if !groupableFields[field] {
		return nil, fmt.Errorf("productRepo.DistinctValues: field %q is not groupable", field)
	}

	var values []string
	query := fmt.Sprintf("SELECT DISTINCT %s FROM products", field)
	if err := r.db.SelectContext(ctx, &values, query); err != nil {
		return nil, fmt.Errorf("productRepo.DistinctValues: %w", err)
	}
	return values, nil
}

func (r *productRepo) List(ctx context.Context, skip, take int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		"SELECT * FROM products ORDER BY created_at, key LIMIT $1 OFFSET $2", take, skip)
	if err != nil {
		return nil, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, nil
}

func (r *productRepo) All(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		"SELECT * FROM products ORDER BY created_at, key")
	if err != nil {
		return nil, fmt.Errorf("productRepo.All: %w", err)
	}
	return products, nil
}

func (r *productRepo) DeleteByNumericID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("productRepo.DeleteByNumericID: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) DeleteByKey(ctx context.Context, key uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("productRepo.DeleteByKey: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
