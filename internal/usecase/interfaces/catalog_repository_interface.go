package interfaces

import (
	"context"

	"retailcore/internal/domain/entities"
)

// ICatalogRepository abstracts read access to the product catalog. The
// catalog is written by the admin import pipeline; the auto-pick engine
// only reads it.

type ICatalogRepository interface {
	// ListActive returns non-archived products with stock, active promotion
	// attached when one exists.
	ListActive(ctx context.Context) ([]entities.Product, error)
	// ListByCategory returns non-archived products of one category, or all
	// non-archived products when category is empty.
	ListByCategory(ctx context.Context, category string) ([]entities.Product, error)
	// GetByIDs batch-fetches current product state, keyed by product id.
	// Missing ids are absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]entities.Product, error)
}
