package entities

import "time"

// DraftStatus represents the lifecycle of an auto-pick draft.
//
// Domain notes:
//   - Transitions are one-way: PENDING -> APPLIED or PENDING -> EXPIRED.
//     APPLIED and EXPIRED are terminal.
//   - Expiry is enforced lazily when apply is attempted; no background
//     sweeper touches drafts.

type DraftStatus string

const (
	DraftStatusPending DraftStatus = "PENDING"
	DraftStatusApplied DraftStatus = "APPLIED"
	DraftStatusExpired DraftStatus = "EXPIRED"
)

// DraftParams captures the generation request a draft was produced from.
type DraftParams struct {
	MinSum            float64  `json:"min_sum,omitempty"`
	MaxSum            float64  `json:"max_sum,omitempty"`
	MaxPricePerItem   float64  `json:"max_price_per_item,omitempty"`
	AssortmentMode    float64  `json:"assortment_mode,omitempty"`
	ExcludeCategories []string `json:"exclude_categories,omitempty"`
	IncludeCategories []string `json:"include_categories,omitempty"`
	Target            float64  `json:"target"`
	LowerBound        float64  `json:"lower_bound"`
	UpperBound        float64  `json:"upper_bound"`
}

// DraftItem is one allocated line of a draft.
type DraftItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Volume    string  `json:"volume,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// AutoPickDraft is a time-limited, single-use selection awaiting explicit
// application to a cart.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Status transitions use conditional updates keyed on the current
//     status so concurrent apply attempts serialize on the PENDING guard.

type AutoPickDraft struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	StoreID   string      `json:"store_id"`
	Params    DraftParams `json:"params"`
	Items     []DraftItem `json:"items"`
	Total     float64     `json:"total"`
	Status    DraftStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the draft's apply window has closed.
func (d AutoPickDraft) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}
