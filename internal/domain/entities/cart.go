package entities

import "time"

// CartLine is one product entry in a user's cart for a store.
//
// Domain notes:
//   - Applying a draft upserts lines with overwrite semantics: an existing
//     quantity is replaced, never summed.
//
// Storage model (DynamoDB):
//   - PK: cart_id (user_id#store_id)
//   - SK: product_id

type CartLine struct {
	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}
