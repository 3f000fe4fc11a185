package autopick

import (
	"math"

	"retailcore/internal/domain/entities"
)

const (
	// CategoryNone keys history entries for items without a category label.
	CategoryNone = "uncategorized"
	// VolumeAny keys (category, volume) history entries for items without
	// a volume.
	VolumeAny = "any"

	minAvgQuantity = 1
	maxAvgQuantity = 12
)

// CategoryKey normalizes a product category label for use as a history or
// weight map key.
func CategoryKey(category string) string {
	if category == "" {
		return CategoryNone
	}
	return category
}

// Stats is a running (quantity, distinct order count) pair.
type Stats struct {
	Quantity   int
	OrderCount int
}

// CategoryVolumeKey keys the (category, volume) aggregate.
type CategoryVolumeKey struct {
	Category string
	Volume   string
}

// History holds the purchase aggregates of one user over the lookback
// window. All maps are read-only to downstream components.
type History struct {
	PerProduct        map[string]Stats
	PerCategory       map[string]int
	PerCategoryVolume map[CategoryVolumeKey]Stats

	orderCount int
	orderTotal float64
}

// AggregateHistory scans completed orders and accumulates per-product,
// per-category and per-(category, volume) purchase aggregates. Orders that
// are not done are ignored; the caller is expected to have applied the
// lookback window already. Aggregation is commutative, so input order does
// not matter.
func AggregateHistory(orders []entities.Order) History {
	h := History{
		PerProduct:        make(map[string]Stats),
		PerCategory:       make(map[string]int),
		PerCategoryVolume: make(map[CategoryVolumeKey]Stats),
	}

	productOrders := make(map[string]map[string]struct{})
	cvOrders := make(map[CategoryVolumeKey]map[string]struct{})

	for _, o := range orders {
		if o.Status != entities.OrderStatusDone {
			continue
		}
		h.orderCount++
		h.orderTotal += o.Total

		for _, it := range o.Items {
			cat := it.Category
			if cat == "" {
				cat = CategoryNone
			}
			vol := it.Volume
			if vol == "" {
				vol = VolumeAny
			}
			key := CategoryVolumeKey{Category: cat, Volume: vol}

			ps := h.PerProduct[it.ProductID]
			ps.Quantity += it.Quantity
			if productOrders[it.ProductID] == nil {
				productOrders[it.ProductID] = make(map[string]struct{})
			}
			productOrders[it.ProductID][o.ID] = struct{}{}
			ps.OrderCount = len(productOrders[it.ProductID])
			h.PerProduct[it.ProductID] = ps

			h.PerCategory[cat] += it.Quantity

			cs := h.PerCategoryVolume[key]
			cs.Quantity += it.Quantity
			if cvOrders[key] == nil {
				cvOrders[key] = make(map[string]struct{})
			}
			cvOrders[key][o.ID] = struct{}{}
			cs.OrderCount = len(cvOrders[key])
			h.PerCategoryVolume[key] = cs
		}
	}
	return h
}

// Seen reports whether the user purchased the product within the window.
func (h History) Seen(productID string) bool {
	return h.PerProduct[productID].Quantity > 0
}

// ProductQuantity returns the total purchased quantity of a product.
func (h History) ProductQuantity(productID string) int {
	return h.PerProduct[productID].Quantity
}

// AvgOrderTotal returns the user's average completed-order total over the
// window, or 0 when there is no history.
func (h History) AvgOrderTotal() float64 {
	if h.orderCount == 0 {
		return 0
	}
	return h.orderTotal / float64(h.orderCount)
}

// AvgQuantity returns the per-order average quantity for a product,
// clamped to [1, 12]. It prefers the product's own history, falls back to
// the (category, volume) aggregate, and finally to 1.
func (h History) AvgQuantity(productID, category, volume string) int {
	if s := h.PerProduct[productID]; s.OrderCount > 0 {
		return clampAvg(s.Quantity, s.OrderCount)
	}
	if category == "" {
		category = CategoryNone
	}
	if volume == "" {
		volume = VolumeAny
	}
	if s := h.PerCategoryVolume[CategoryVolumeKey{Category: category, Volume: volume}]; s.OrderCount > 0 {
		return clampAvg(s.Quantity, s.OrderCount)
	}
	return minAvgQuantity
}

func clampAvg(quantity, orders int) int {
	avg := int(math.Round(float64(quantity) / float64(orders)))
	if avg < minAvgQuantity {
		return minAvgQuantity
	}
	if avg > maxAvgQuantity {
		return maxAvgQuantity
	}
	return avg
}
