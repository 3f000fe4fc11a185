package entities

import "time"

// Product is a catalog item. The catalog is owned by the admin import
// pipeline; the auto-pick engine reads it and never mutates it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (category-index): category
//
// Boxing:
//   - BoxSize is the quantity per shippable box. Zero or one means the
//     product has no boxing constraint.

type Product struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category,omitempty"`
	Volume     string         `json:"volume,omitempty"`
	BasePrice  float64        `json:"base_price"`
	Stock      int            `json:"stock"`
	BoxSize    int            `json:"box_size,omitempty"`
	Archived   bool           `json:"archived"`
	Novelty    bool           `json:"novelty"`
	FixedPrice bool           `json:"fixed_price"`
	Promotion  *Promotion     `json:"promotion,omitempty"`
	Images     []ProductImage `json:"images,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// PrimaryImage returns the first image URL, if any.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// ProductImage is one entry of a product's ordered image list.
type ProductImage struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Promotion is the single active promotional price a product may carry.
//
// Domain notes:
//   - A promotion belongs to exactly one product and is embedded in its
//     catalog item.
//   - Only promotions whose expiry is in the future are eligible.
//   - ApplyModifier controls whether the user price modifier is applied
//     on top of the promotional price. Absent means true.

type Promotion struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Price         float64   `json:"price"`
	ExpiresAt     time.Time `json:"expires_at"`
	ApplyModifier *bool     `json:"apply_modifier,omitempty"`
}

// Active reports whether the promotion is still running at the given time.
func (p *Promotion) Active(now time.Time) bool {
	return p != nil && p.ExpiresAt.After(now)
}

// AppliesModifier reports whether the user price modifier applies to the
// promotional price. Defaults to true when the flag is absent.
func (p *Promotion) AppliesModifier() bool {
	return p.ApplyModifier == nil || *p.ApplyModifier
}

// ProductScore holds the ranking signals for one product. At most one per
// product; derived externally from recent sales velocity and curated by
// admins, never mutated by the auto-pick engine.
//
// Storage model (DynamoDB):
//   - PK: product_id

type ProductScore struct {
	ProductID    string   `json:"product_id"`
	Auto         float64  `json:"auto"`
	Manual       *float64 `json:"manual,omitempty"`
	PromoBoost   float64  `json:"promo_boost,omitempty"`
	NoveltyBoost float64  `json:"novelty_boost,omitempty"`
}

// Global returns the manual override when present, else the automatic score.
func (s ProductScore) Global() float64 {
	if s.Manual != nil {
		return *s.Manual
	}
	return s.Auto
}
