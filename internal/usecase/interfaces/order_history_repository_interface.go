package interfaces

import (
	"context"
	"time"

	"retailcore/internal/domain/entities"
)

// IOrderHistoryRepository abstracts read access to completed orders for
// history aggregation.

type IOrderHistoryRepository interface {
	// ListCompletedSince returns the user's done orders created at or after
	// since, items embedded with category/volume denormalized in.
	ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]entities.Order, error)
}
