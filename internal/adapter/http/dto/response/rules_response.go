package response

import (
	"time"

	"retailcore/internal/domain/entities"
)

type CategoryRuleResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Volume      string    `json:"volume,omitempty"`
	MinQuantity int       `json:"min_quantity"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCategoryRule(r entities.CategoryRule) CategoryRuleResponse {
	return CategoryRuleResponse{
		ID:          r.ID,
		Category:    r.Category,
		Volume:      r.Volume,
		MinQuantity: r.MinQuantity,
		Enabled:     r.Enabled,
		CreatedAt:   r.CreatedAt,
	}
}

func FromCategoryRules(rules []entities.CategoryRule) []CategoryRuleResponse {
	out := make([]CategoryRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromCategoryRule(r))
	}
	return out
}

type StockRuleResponse struct {
	ID           string    `json:"id"`
	Priority     int       `json:"priority"`
	MaxPrice     float64   `json:"max_price,omitempty"`
	MaxStock     int       `json:"max_stock,omitempty"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromStockRule(r entities.StockRule) StockRuleResponse {
	return StockRuleResponse{
		ID:           r.ID,
		Priority:     r.Priority,
		MaxPrice:     r.MaxPrice,
		MaxStock:     r.MaxStock,
		Availability: string(r.Availability),
		CreatedAt:    r.CreatedAt,
	}
}

func FromStockRules(rules []entities.StockRule) []StockRuleResponse {
	out := make([]StockRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromStockRule(r))
	}
	return out
}

type AssortmentProfileResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Weights   map[string]float64 `json:"weights"`
	Default   bool               `json:"default"`
	CreatedAt time.Time          `json:"created_at"`
}

func FromAssortmentProfile(p entities.AssortmentProfile) AssortmentProfileResponse {
	return AssortmentProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Weights:   p.Weights,
		Default:   p.Default,
		CreatedAt: p.CreatedAt,
	}
}

func FromAssortmentProfiles(profiles []entities.AssortmentProfile) []AssortmentProfileResponse {
	out := make([]AssortmentProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromAssortmentProfile(p))
	}
	return out
}
