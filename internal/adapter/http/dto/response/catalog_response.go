package response

import (
	"time"

	"retailcore/internal/domain/entities"
)

type PromotionResponse struct {
	ID        string    `json:"id"`
	Price     float64   `json:"price"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProductResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Category  string             `json:"category,omitempty"`
	Volume    string             `json:"volume,omitempty"`
	BasePrice float64            `json:"base_price"`
	Stock     int                `json:"stock"`
	BoxSize   int                `json:"box_size,omitempty"`
	Novelty   bool               `json:"novelty"`
	ImageURL  string             `json:"image_url,omitempty"`
	Promotion *PromotionResponse `json:"promotion,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Volume:    p.Volume,
		BasePrice: p.BasePrice,
		Stock:     p.Stock,
		BoxSize:   p.BoxSize,
		Novelty:   p.Novelty,
		ImageURL:  p.PrimaryImage(),
	}
	if p.Promotion != nil {
		resp.Promotion = &PromotionResponse{
			ID:        p.Promotion.ID,
			Price:     p.Promotion.Price,
			ExpiresAt: p.Promotion.ExpiresAt,
		}
	}
	return resp
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
