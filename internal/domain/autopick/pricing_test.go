package autopick

import (
	"testing"
	"time"

	"retailcore/internal/domain/entities"
)

func TestResolvePrice(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	boolPtr := func(v bool) *bool { return &v }

	t.Run("base price modified", func(t *testing.T) {
		got := ResolvePrice(entities.Product{BasePrice: 100}, 10, now)
		if got.Effective != 110 || got.Base != 110 {
			t.Fatalf("expected 110/110, got %+v", got)
		}
		if got.PromotionID != "" {
			t.Fatalf("expected no promotion, got %q", got.PromotionID)
		}
	})

	t.Run("fixed price ignores modifier", func(t *testing.T) {
		got := ResolvePrice(entities.Product{BasePrice: 100, FixedPrice: true}, 25, now)
		if got.Effective != 100 || got.Base != 100 {
			t.Fatalf("expected 100/100, got %+v", got)
		}
	})

	t.Run("modified price rounds to 2 decimals", func(t *testing.T) {
		got := ResolvePrice(entities.Product{BasePrice: 99.99}, 1, now)
		if got.Effective != 100.99 {
			t.Fatalf("expected 100.99, got %v", got.Effective)
		}
	})

	t.Run("active promotion with modifier", func(t *testing.T) {
		p := entities.Product{
			BasePrice: 100,
			Promotion: &entities.Promotion{ID: "promo-1", Price: 50, ExpiresAt: now.Add(time.Hour)},
		}
		got := ResolvePrice(p, 10, now)
		if got.Effective != 55 {
			t.Fatalf("expected 55, got %v", got.Effective)
		}
		if got.Base != 110 {
			t.Fatalf("expected base 110, got %v", got.Base)
		}
		if got.PromotionID != "promo-1" {
			t.Fatalf("expected promo-1, got %q", got.PromotionID)
		}
	})

	t.Run("promotion opting out of modifier", func(t *testing.T) {
		p := entities.Product{
			BasePrice: 100,
			Promotion: &entities.Promotion{
				ID:            "promo-1",
				Price:         50,
				ExpiresAt:     now.Add(time.Hour),
				ApplyModifier: boolPtr(false),
			},
		}
		got := ResolvePrice(p, 10, now)
		if got.Effective != 50 {
			t.Fatalf("expected raw promo price 50, got %v", got.Effective)
		}
	})

	t.Run("expired promotion falls back to base", func(t *testing.T) {
		p := entities.Product{
			BasePrice: 100,
			Promotion: &entities.Promotion{ID: "promo-1", Price: 50, ExpiresAt: now.Add(-time.Minute)},
		}
		got := ResolvePrice(p, 0, now)
		if got.Effective != 100 || got.PromotionID != "" {
			t.Fatalf("expected base price without promotion, got %+v", got)
		}
	})
}
