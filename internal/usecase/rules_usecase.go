package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/cache"
	"retailcore/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategoryRule = errors.New("invalid category rule")
	ErrInvalidStockRule    = errors.New("invalid stock rule")
	ErrRuleNotFound        = errors.New("rule not found")
	ErrInvalidRuleID       = errors.New("invalid rule id")
)

// IRulesUseCase exposes the admin surface for the rule data the auto-pick
// engine reads: category minimum-quantity floors and the stock rule
// availability classifier.

type IRulesUseCase interface {
	CreateCategoryRule(ctx context.Context, r entities.CategoryRule) (entities.CategoryRule, error)
	ListCategoryRules(ctx context.Context) ([]entities.CategoryRule, error)
	DeleteCategoryRule(ctx context.Context, id string) error
	CreateStockRule(ctx context.Context, r entities.StockRule) (entities.StockRule, error)
	ListStockRules(ctx context.Context) ([]entities.StockRule, error)
	DeleteStockRule(ctx context.Context, id string) error
}

type RulesUseCase struct {
	catRules   interfaces.ICategoryRuleRepository
	stockRules interfaces.IStockRuleRepository
	cache      *cache.StockRuleCache
}

var _ IRulesUseCase = (*RulesUseCase)(nil)

func NewRulesUseCase(catRules interfaces.ICategoryRuleRepository, stockRules interfaces.IStockRuleRepository, c *cache.StockRuleCache) *RulesUseCase {
	return &RulesUseCase{catRules: catRules, stockRules: stockRules, cache: c}
}

func (u *RulesUseCase) CreateCategoryRule(ctx context.Context, r entities.CategoryRule) (entities.CategoryRule, error) {
	r.Category = strings.TrimSpace(r.Category)
	r.Volume = strings.TrimSpace(r.Volume)
	if r.Category == "" || r.MinQuantity < 0 {
		return entities.CategoryRule{}, ErrInvalidCategoryRule
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	return u.catRules.Create(ctx, r)
}

func (u *RulesUseCase) ListCategoryRules(ctx context.Context) ([]entities.CategoryRule, error) {
	return u.catRules.List(ctx)
}

func (u *RulesUseCase) DeleteCategoryRule(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRuleID
	}
	existed, err := u.catRules.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrRuleNotFound
	}
	return nil
}

func (u *RulesUseCase) CreateStockRule(ctx context.Context, r entities.StockRule) (entities.StockRule, error) {
	if r.Availability != entities.StockAvailable && r.Availability != entities.StockUnavailable {
		return entities.StockRule{}, ErrInvalidStockRule
	}
	if r.MaxPrice < 0 || r.MaxStock < 0 {
		return entities.StockRule{}, ErrInvalidStockRule
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	created, err := u.stockRules.Create(ctx, r)
	if err != nil {
		return entities.StockRule{}, err
	}
	u.cache.Invalidate()
	return created, nil
}

func (u *RulesUseCase) ListStockRules(ctx context.Context) ([]entities.StockRule, error) {
	return u.stockRules.List(ctx)
}

func (u *RulesUseCase) DeleteStockRule(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRuleID
	}
	existed, err := u.stockRules.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrRuleNotFound
	}
	u.cache.Invalidate()
	return nil
}
