package request

import "strings"

// GenerateAutoPickRequest is the payload for draft generation. All budget
// fields are optional; zero means "not constrained" and the engine derives
// a target from history.
type GenerateAutoPickRequest struct {
	UserID            string   `json:"user_id" binding:"required"`
	StoreID           string   `json:"store_id" binding:"required"`
	MinSum            float64  `json:"min_sum"`
	MaxSum            float64  `json:"max_sum"`
	MaxPricePerItem   float64  `json:"max_price_per_item"`
	AssortmentMode    float64  `json:"assortment_mode"`
	ExcludeCategories []string `json:"exclude_categories"`
	IncludeCategories []string `json:"include_categories"`
}

// ApplyDraftRequest identifies the caller applying a draft. StoreID is
// optional and falls back to the store the draft was generated for.
type ApplyDraftRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	StoreID string `json:"store_id"`
}

func (r GenerateAutoPickRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r GenerateAutoPickRequest) ResolveStoreID() string {
	return strings.TrimSpace(r.StoreID)
}
