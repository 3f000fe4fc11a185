package autopick

import (
	"testing"
	"time"

	"retailcore/internal/domain/entities"
)

func TestAggregateHistory(t *testing.T) {
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	orders := []entities.Order{
		{
			ID: "o1", UserID: "u1", Status: entities.OrderStatusDone, Total: 100, CreatedAt: created,
			Items: []entities.OrderItem{
				{ProductID: "p1", Category: "beer", Volume: "0.5", Quantity: 2},
				{ProductID: "p2", Quantity: 3},
			},
		},
		{
			ID: "o2", UserID: "u1", Status: entities.OrderStatusDone, Total: 200, CreatedAt: created,
			Items: []entities.OrderItem{
				{ProductID: "p1", Category: "beer", Volume: "0.5", Quantity: 4},
			},
		},
		{
			ID: "o3", UserID: "u1", Status: entities.OrderStatusPending, Total: 999, CreatedAt: created,
			Items: []entities.OrderItem{
				{ProductID: "p9", Category: "wine", Quantity: 50},
			},
		},
	}

	h := AggregateHistory(orders)

	t.Run("per product", func(t *testing.T) {
		if s := h.PerProduct["p1"]; s.Quantity != 6 || s.OrderCount != 2 {
			t.Fatalf("unexpected p1 stats: %+v", s)
		}
		if s := h.PerProduct["p2"]; s.Quantity != 3 || s.OrderCount != 1 {
			t.Fatalf("unexpected p2 stats: %+v", s)
		}
		if _, ok := h.PerProduct["p9"]; ok {
			t.Fatalf("pending order must not contribute")
		}
	})

	t.Run("per category with sentinel", func(t *testing.T) {
		if h.PerCategory["beer"] != 6 {
			t.Fatalf("expected beer=6, got %d", h.PerCategory["beer"])
		}
		if h.PerCategory[CategoryNone] != 3 {
			t.Fatalf("expected uncategorized=3, got %d", h.PerCategory[CategoryNone])
		}
	})

	t.Run("per category and volume", func(t *testing.T) {
		s := h.PerCategoryVolume[CategoryVolumeKey{Category: "beer", Volume: "0.5"}]
		if s.Quantity != 6 || s.OrderCount != 2 {
			t.Fatalf("unexpected stats: %+v", s)
		}
		s = h.PerCategoryVolume[CategoryVolumeKey{Category: CategoryNone, Volume: VolumeAny}]
		if s.Quantity != 3 || s.OrderCount != 1 {
			t.Fatalf("unexpected sentinel stats: %+v", s)
		}
	})

	t.Run("seen", func(t *testing.T) {
		if !h.Seen("p1") || h.Seen("p9") {
			t.Fatalf("unexpected seen flags")
		}
	})

	t.Run("avg order total", func(t *testing.T) {
		if got := h.AvgOrderTotal(); got != 150 {
			t.Fatalf("expected 150, got %v", got)
		}
		if got := AggregateHistory(nil).AvgOrderTotal(); got != 0 {
			t.Fatalf("expected 0 for empty history, got %v", got)
		}
	})
}

func TestHistory_AvgQuantity(t *testing.T) {
	orders := []entities.Order{
		{
			ID: "o1", Status: entities.OrderStatusDone,
			Items: []entities.OrderItem{
				{ProductID: "p1", Category: "beer", Volume: "0.5", Quantity: 2},
				{ProductID: "bulk", Category: "water", Quantity: 100},
			},
		},
		{
			ID: "o2", Status: entities.OrderStatusDone,
			Items: []entities.OrderItem{
				{ProductID: "p1", Category: "beer", Volume: "0.5", Quantity: 4},
			},
		},
	}
	h := AggregateHistory(orders)

	t.Run("per-product average", func(t *testing.T) {
		if got := h.AvgQuantity("p1", "beer", "0.5"); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("category volume fallback", func(t *testing.T) {
		if got := h.AvgQuantity("other", "beer", "0.5"); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("default when no history", func(t *testing.T) {
		if got := h.AvgQuantity("other", "wine", "1.0"); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("clamped to upper bound", func(t *testing.T) {
		if got := h.AvgQuantity("bulk", "water", ""); got != 12 {
			t.Fatalf("expected clamp to 12, got %d", got)
		}
	})
}
