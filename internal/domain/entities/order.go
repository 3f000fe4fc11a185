package entities

import "time"

// OrderStatus is the lifecycle state of a customer order. The auto-pick
// engine only ever reads orders that reached OrderStatusDone.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
	OrderStatusCancel  OrderStatus = "cancelled"
)

// Order is a completed (or in-flight) customer order. Order placement
// itself lives in the ordering service; this entity is the read model the
// history aggregation consumes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - Items are embedded with product category/volume denormalized in, so
//     history aggregation needs no catalog join.

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	StoreID   string      `json:"store_id,omitempty"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Category  string  `json:"category,omitempty"`
	Volume    string  `json:"volume,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
