package autopick

import "retailcore/internal/domain/entities"

// Weights is the target budget share per category plus a fallback share
// for categories absent from the chosen map. The fallback covers the case
// where a category has candidates but no purchase history.
type Weights struct {
	ByCategory map[string]float64
	Fallback   float64
}

// For returns the weight of a category, falling back when it is absent.
func (w Weights) For(category string) float64 {
	if v, ok := w.ByCategory[category]; ok {
		return v
	}
	return w.Fallback
}

// BuildCategoryWeights derives the per-category budget shares.
//
// Priority order:
//  1. observed purchase-history proportions, when any history exists;
//  2. the default assortment profile's declared weights, normalized;
//  3. a uniform split across the categories of the current candidates.
func BuildCategoryWeights(perCategory map[string]int, profile *entities.AssortmentProfile, candidateCategories []string) Weights {
	historyTotal := 0
	for _, q := range perCategory {
		historyTotal += q
	}
	if historyTotal > 0 {
		byCat := make(map[string]float64, len(perCategory))
		for cat, q := range perCategory {
			byCat[cat] = float64(q) / float64(historyTotal)
		}
		return Weights{ByCategory: byCat, Fallback: fallbackWeight(len(byCat))}
	}

	if profile != nil && profile.HasPositiveWeight() {
		sum := 0.0
		for _, w := range profile.Weights {
			if w > 0 {
				sum += w
			}
		}
		byCat := make(map[string]float64, len(profile.Weights))
		for cat, w := range profile.Weights {
			if w > 0 {
				byCat[cat] = w / sum
			}
		}
		return Weights{ByCategory: byCat, Fallback: fallbackWeight(len(byCat))}
	}

	distinct := make(map[string]struct{}, len(candidateCategories))
	for _, cat := range candidateCategories {
		distinct[cat] = struct{}{}
	}
	byCat := make(map[string]float64, len(distinct))
	uniform := fallbackWeight(len(distinct))
	for cat := range distinct {
		byCat[cat] = uniform
	}
	return Weights{ByCategory: byCat, Fallback: uniform}
}

func fallbackWeight(n int) float64 {
	if n < 1 {
		n = 1
	}
	return 1 / float64(n)
}
