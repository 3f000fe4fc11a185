package entities

import "time"

// CategoryRule sets a minimum line-item quantity for a (category, volume)
// pair. A rule with an empty volume applies to every volume of the category.
//
// Storage model (DynamoDB):
//   - PK: id

type CategoryRule struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Volume      string    `json:"volume,omitempty"`
	MinQuantity int       `json:"min_quantity"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

// Matches reports whether the rule covers the given category and volume.
func (r CategoryRule) Matches(category, volume string) bool {
	if !r.Enabled || r.Category != category {
		return false
	}
	return r.Volume == "" || r.Volume == volume
}

// StockAvailability labels what a matching stock rule does to a product.
type StockAvailability string

const (
	StockAvailable   StockAvailability = "available"
	StockUnavailable StockAvailability = "unavailable"
)

// StockRule classifies product availability from its price and stock.
//
// Domain notes:
//   - Rules are evaluated in ascending Priority order; the first matching
//     rule determines the label and no further rules are consulted.
//   - A zero MaxPrice or MaxStock ceiling means that dimension is
//     unconstrained for the rule.
//   - A product matching no rule counts as available.
//
// Storage model (DynamoDB):
//   - PK: id

type StockRule struct {
	ID           string            `json:"id"`
	Priority     int               `json:"priority"`
	MaxPrice     float64           `json:"max_price,omitempty"`
	MaxStock     int               `json:"max_stock,omitempty"`
	Availability StockAvailability `json:"availability"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Matches reports whether the rule applies to a product with the given
// effective price and stock.
func (r StockRule) Matches(price float64, stock int) bool {
	if r.MaxPrice > 0 && price > r.MaxPrice {
		return false
	}
	if r.MaxStock > 0 && stock > r.MaxStock {
		return false
	}
	return true
}

// AssortmentProfile is a named fallback weighting scheme used when a user
// has no purchase history to derive category shares from.
//
// Domain notes:
//   - At most one profile is the default at a time; writing a default
//     profile clears the flag on every other profile.
//
// Storage model (DynamoDB):
//   - PK: id

type AssortmentProfile struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Weights   map[string]float64 `json:"weights"`
	Default   bool               `json:"default"`
	CreatedAt time.Time          `json:"created_at"`
}

// HasPositiveWeight reports whether at least one declared weight is usable.
func (p AssortmentProfile) HasPositiveWeight() bool {
	for _, w := range p.Weights {
		if w > 0 {
			return true
		}
	}
	return false
}
