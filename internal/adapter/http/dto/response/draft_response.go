package response

import (
	"time"

	"retailcore/internal/domain/autopick"
	"retailcore/internal/domain/entities"
)

type DraftItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Volume    string  `json:"volume,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

type DraftParamsResponse struct {
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

type DraftResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	StoreID   string              `json:"store_id"`
	Params    DraftParamsResponse `json:"params"`
	Items     []DraftItemResponse `json:"items"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	ExpiresAt time.Time           `json:"expires_at"`
}

type SkippedResponse struct {
	ExcludedCategory    int `json:"excluded_category"`
	NotIncludedCategory int `json:"not_included_category"`
	MaxPrice            int `json:"max_price"`
	StockRule           int `json:"stock_rule"`
	NonPositivePrice    int `json:"non_positive_price"`
}

type DiagnosticsResponse struct {
	Skipped                  SkippedResponse `json:"skipped"`
	CheapestPrice            float64         `json:"cheapest_price,omitempty"`
	CheapestExceedsMaxBudget bool            `json:"cheapest_exceeds_max_budget,omitempty"`
}

// GenerateResponse is the success body of a generation call.
type GenerateResponse struct {
	Draft       DraftResponse       `json:"draft"`
	Diagnostics DiagnosticsResponse `json:"diagnostics"`
}

// GenerateFailureResponse is the body of an unsatisfiable generation call;
// diagnostics explain which filters emptied the candidate pool.
type GenerateFailureResponse struct {
	Code        string              `json:"code"`
	Message     string              `json:"message"`
	Diagnostics DiagnosticsResponse `json:"diagnostics"`
}

// ApplyDraftResponse reports how the draft's lines fared on application.
type ApplyDraftResponse struct {
	DraftID      string `json:"draft_id"`
	Status       string `json:"status"`
	AppliedItems int    `json:"applied_items"`
	SkippedItems int    `json:"skipped_items"`
}

func FromDraft(d entities.AutoPickDraft) DraftResponse {
	resp := DraftResponse{
		ID:      d.ID,
		UserID:  d.UserID,
		StoreID: d.StoreID,
		Params: DraftParamsResponse{
			MinSum:            d.Params.MinSum,
			MaxSum:            d.Params.MaxSum,
			MaxPricePerItem:   d.Params.MaxPricePerItem,
			AssortmentMode:    d.Params.AssortmentMode,
			ExcludeCategories: d.Params.ExcludeCategories,
			IncludeCategories: d.Params.IncludeCategories,
			Target:            d.Params.Target,
			LowerBound:        d.Params.LowerBound,
			UpperBound:        d.Params.UpperBound,
		},
		Items:     make([]DraftItemResponse, 0, len(d.Items)),
		Total:     d.Total,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		ExpiresAt: d.ExpiresAt,
	}
	for _, it := range d.Items {
		resp.Items = append(resp.Items, DraftItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Category:  it.Category,
			Volume:    it.Volume,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Total:     it.Total,
		})
	}
	return resp
}

func FromDiagnostics(d autopick.Diagnostics) DiagnosticsResponse {
	return DiagnosticsResponse{
		Skipped: SkippedResponse{
			ExcludedCategory:    d.Skipped.ExcludedCategory,
			NotIncludedCategory: d.Skipped.NotIncludedCategory,
			MaxPrice:            d.Skipped.MaxPrice,
			StockRule:           d.Skipped.StockRule,
			NonPositivePrice:    d.Skipped.NonPositivePrice,
		},
		CheapestPrice:            d.CheapestPrice,
		CheapestExceedsMaxBudget: d.CheapestExceedsMaxBudget,
	}
}
