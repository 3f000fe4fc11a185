package request

import "retailcore/internal/domain/entities"

// CategoryRuleRequest creates a minimum-quantity floor for a category and
// optional volume.
type CategoryRuleRequest struct {
	Category    string `json:"category" binding:"required"`
	Volume      string `json:"volume"`
	MinQuantity int    `json:"min_quantity" binding:"required"`
	Enabled     bool   `json:"enabled"`
}

func (r CategoryRuleRequest) ToEntity() entities.CategoryRule {
	return entities.CategoryRule{
		Category:    r.Category,
		Volume:      r.Volume,
		MinQuantity: r.MinQuantity,
		Enabled:     r.Enabled,
	}
}

// StockRuleRequest creates an availability classification rule. Zero
// ceilings leave that dimension unconstrained.
type StockRuleRequest struct {
	Priority     int     `json:"priority"`
	MaxPrice     float64 `json:"max_price"`
	MaxStock     int     `json:"max_stock"`
	Availability string  `json:"availability" binding:"required"`
}

func (r StockRuleRequest) ToEntity() entities.StockRule {
	return entities.StockRule{
		Priority:     r.Priority,
		MaxPrice:     r.MaxPrice,
		MaxStock:     r.MaxStock,
		Availability: entities.StockAvailability(r.Availability),
	}
}
