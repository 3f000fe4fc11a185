package request

import "retailcore/internal/domain/entities"

// AssortmentProfileRequest creates a named category weighting profile.
// Setting default promotes the profile and demotes the previous default.
type AssortmentProfileRequest struct {
	Name    string             `json:"name" binding:"required"`
	Weights map[string]float64 `json:"weights" binding:"required"`
	Default bool               `json:"default"`
}

func (r AssortmentProfileRequest) ToEntity() entities.AssortmentProfile {
	return entities.AssortmentProfile{
		Name:    r.Name,
		Weights: r.Weights,
		Default: r.Default,
	}
}
