package interfaces

import (
	"context"

	"retailcore/internal/domain/entities"
)

// ICartRepository abstracts cart writes for draft application.

type ICartRepository interface {
	// Upsert inserts the line or overwrites the existing quantity for the
	// same (user, store, product). Last write wins, no summation.
	Upsert(ctx context.Context, line entities.CartLine) (entities.CartLine, error)
}
