package interfaces

import (
	"context"

	"retailcore/internal/domain/entities"
)

// IScoreRepository abstracts read access to per-product ranking scores.

type IScoreRepository interface {
	// GetByProductIDs batch-fetches scores, keyed by product id. Products
	// without a score record are absent from the result.
	GetByProductIDs(ctx context.Context, ids []string) (map[string]entities.ProductScore, error)
}
