package port

import (
	"context"

	"github.com/google/uuid"

	"invensight/internal/domain"
)

// ProductRepository is the record-source boundary for order/product rows.
// Aggregation itself happens in memory (internal/report); the repository
// only filters, counts, and pages raw records.
type ProductRepository interface {
	// Count returns the number of records in the store.
	Count(ctx context.Context) (int, error)
	// DistinctValues returns the distinct values of the given column.
	// Only the whitelisted grouping fields (category, supplier,
	// customer_email) are accepted.
	DistinctValues(ctx context.Context, field string) ([]string, error)
	// List returns a window of records ordered by insertion.
	List(ctx context.Context, skip, take int) ([]domain.Product, error)
	// All materializes the full record batch for in-memory aggregation.
	All(ctx context.Context) ([]domain.Product, error)
	// DeleteByNumericID deletes the record carrying the legacy numeric id.
	// Returns domain.ErrProductNotFound when no such record exists.
	DeleteByNumericID(ctx context.Context, id int64) error
	// DeleteByKey deletes the record by its native key.
	// Returns domain.ErrProductNotFound when no such record exists.
	DeleteByKey(ctx context.Context, key uuid.UUID) error
}
