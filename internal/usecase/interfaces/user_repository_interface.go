package interfaces

import "context"

// IUserRepository abstracts the user attributes the pricing resolver needs.

type IUserRepository interface {
	// GetPriceModifier returns the user's global percentage price modifier.
	// Users without an explicit modifier get 0.
	GetPriceModifier(ctx context.Context, userID string) (float64, error)
}
