package autopick

import (
	"sort"
	"time"

	"retailcore/internal/domain/entities"
)

const (
	personalWeight   = 0.6
	globalWeight     = 0.4
	noveltyFlagBoost = 1.15
	unseenModeBoost  = 0.15
)

// Candidate is an eligible, priced product carrying its ranking state
// through the interleaver into the allocator.
type Candidate struct {
	Product     entities.Product
	Price       float64
	BasePrice   float64
	PromotionID string
	Score       float64
	Seen        bool
}

// SkipCounts breaks down why products were excluded from candidacy.
type SkipCounts struct {
	ExcludedCategory    int `json:"excluded_category"`
	NotIncludedCategory int `json:"not_included_category"`
	MaxPrice            int `json:"max_price"`
	StockRule           int `json:"stock_rule"`
	NonPositivePrice    int `json:"non_positive_price"`
}

// Diagnostics reports candidate filtering outcomes. It is returned with
// every generation result and with budget-unreachable failures.
type Diagnostics struct {
	Skipped                  SkipCounts `json:"skipped"`
	CheapestPrice            float64    `json:"cheapest_price,omitempty"`
	CheapestExceedsMaxBudget bool       `json:"cheapest_exceeds_max_budget,omitempty"`
}

// RankParams tunes candidate filtering and scoring.
type RankParams struct {
	ModifierPercent   float64
	ExcludeCategories []string
	IncludeCategories []string
	// MaxPricePerItem excludes candidates above the ceiling. Zero means no
	// ceiling.
	MaxPricePerItem float64
	// AssortmentMode is a non-negative tunable; higher values boost
	// never-purchased products harder. Zero adds no extra emphasis.
	AssortmentMode float64
	// StockRules must be sorted by ascending priority.
	StockRules []entities.StockRule
	Now        time.Time
}

// Rank filters the catalog down to eligible candidates and orders them by
// the blended personal/global score, descending. The sort is stable, so
// ties keep catalog order and repeated runs on the same input produce the
// same sequence.
func Rank(products []entities.Product, scores map[string]entities.ProductScore, hist History, p RankParams) ([]Candidate, Diagnostics) {
	excluded := make(map[string]struct{}, len(p.ExcludeCategories))
	for _, c := range p.ExcludeCategories {
		excluded[c] = struct{}{}
	}
	included := make(map[string]struct{}, len(p.IncludeCategories))
	for _, c := range p.IncludeCategories {
		included[c] = struct{}{}
	}

	var diag Diagnostics
	candidates := make([]Candidate, 0, len(products))

	for _, prod := range products {
		if prod.Archived || prod.Stock <= 0 {
			continue
		}
		if _, ok := excluded[prod.Category]; ok {
			diag.Skipped.ExcludedCategory++
			continue
		}
		if len(included) > 0 {
			if _, ok := included[prod.Category]; !ok {
				diag.Skipped.NotIncludedCategory++
				continue
			}
		}

		price := ResolvePrice(prod, p.ModifierPercent, p.Now)
		if price.Effective <= 0 {
			diag.Skipped.NonPositivePrice++
			continue
		}
		if p.MaxPricePerItem > 0 && price.Effective > p.MaxPricePerItem {
			diag.Skipped.MaxPrice++
			continue
		}
		if UnavailableByStockRule(p.StockRules, price.Effective, prod.Stock) {
			diag.Skipped.StockRule++
			continue
		}

		seen := hist.Seen(prod.ID)
		candidates = append(candidates, Candidate{
			Product:     prod,
			Price:       price.Effective,
			BasePrice:   price.Base,
			PromotionID: price.PromotionID,
			Score:       score(prod, scores[prod.ID], hist, seen, p.AssortmentMode),
			Seen:        seen,
		})
		if diag.CheapestPrice == 0 || price.Effective < diag.CheapestPrice {
			diag.CheapestPrice = price.Effective
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, diag
}

func score(prod entities.Product, s entities.ProductScore, hist History, seen bool, assortmentMode float64) float64 {
	personal := float64(hist.ProductQuantity(prod.ID))
	global := s.Global()

	boost := boostFactor(s.PromoBoost) * boostFactor(s.NoveltyBoost)
	if prod.Novelty {
		boost *= noveltyFlagBoost
	}
	if !seen {
		boost *= 1 + unseenModeBoost*assortmentMode
	}
	return (personalWeight*personal + globalWeight*global) * boost
}

// boostFactor treats an unset (zero or negative) multiplier as neutral.
func boostFactor(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// UnavailableByStockRule walks the priority-ordered rules; the first
// matching rule decides. No match means available.
func UnavailableByStockRule(rules []entities.StockRule, price float64, stock int) bool {
	for _, r := range rules {
		if r.Matches(price, stock) {
			return r.Availability == entities.StockUnavailable
		}
	}
	return false
}
