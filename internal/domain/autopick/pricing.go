package autopick

import (
	"time"

	"retailcore/internal/domain/entities"
)

// ResolvedPrice is the outcome of user-specific price resolution for one
// product.
type ResolvedPrice struct {
	// Effective is the per-unit price the allocator works with.
	Effective float64
	// Base is the modified base price, kept for display alongside a
	// promotional price.
	Base float64
	// PromotionID is set when an active promotion produced Effective.
	PromotionID string
}

// ResolvePrice computes a user-specific effective price.
//
// modifierPercent is the user's global percentage price modifier; the
// resulting factor 1+modifierPercent/100 is applied to the base price
// unless the product carries a fixed price, and to an active promotional
// price unless the promotion opts out of modification.
//
// A zero or negative effective price means "unpriced"; callers exclude
// such products from candidacy.
func ResolvePrice(p entities.Product, modifierPercent float64, now time.Time) ResolvedPrice {
	factor := 1 + modifierPercent/100

	base := p.BasePrice
	if !p.FixedPrice {
		base = Round2(base * factor)
	}

	out := ResolvedPrice{Effective: base, Base: base}
	if promo := p.Promotion; promo.Active(now) {
		if promo.AppliesModifier() {
			out.Effective = Round2(promo.Price * factor)
		} else {
			out.Effective = promo.Price
		}
		out.PromotionID = promo.ID
	}
	return out
}
