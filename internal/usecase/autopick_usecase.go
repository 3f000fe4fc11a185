package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"retailcore/internal/domain/autopick"
	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/cache"
	"retailcore/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidStoreID      = errors.New("invalid store id")
	ErrInvalidDraftID      = errors.New("invalid draft id")
	ErrInvalidBudgetBounds = errors.New("invalid budget bounds")
	ErrDraftNotFound       = errors.New("draft not found")
	ErrDraftNotOwned       = errors.New("draft not owned by caller")
	ErrDraftWrongStatus    = errors.New("draft is not pending")
	ErrDraftExpired        = errors.New("draft expired")
)

// GenerateCommand is the caller's auto-pick request.
type GenerateCommand struct {
	UserID            string
	StoreID           string
	MinSum            float64
	MaxSum            float64
	MaxPricePerItem   float64
	AssortmentMode    float64
	ExcludeCategories []string
	IncludeCategories []string
}

// GenerateResult carries the persisted draft plus filtering diagnostics.
type GenerateResult struct {
	Draft       entities.AutoPickDraft
	Diagnostics autopick.Diagnostics
}

// ApplyResult reports how many draft lines survived re-validation.
type ApplyResult struct {
	AppliedItems int
	SkippedItems int
}

// AutoPickOptions are the engine tunables, normally sourced from config.
type AutoPickOptions struct {
	LookbackDays  int
	UnseenShare   float64
	DefaultTarget float64
	DraftTTL      time.Duration
}

// DefaultAutoPickOptions returns the documented engine defaults.
func DefaultAutoPickOptions() AutoPickOptions {
	return AutoPickOptions{
		LookbackDays:  90,
		UnseenShare:   0.1,
		DefaultTarget: 5000,
		DraftTTL:      time.Hour,
	}
}

// IAutoPickUseCase exposes the auto-pick operations:
//   - Generate builds and persists a draft selection for a budget window.
//   - ApplyDraft materializes a pending draft into the user's cart.
//   - GetDraft reads a draft back for the owning user.

type IAutoPickUseCase interface {
	Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error)
	ApplyDraft(ctx context.Context, draftID, userID, storeID string) (ApplyResult, error)
	GetDraft(ctx context.Context, draftID, userID string) (entities.AutoPickDraft, error)
}

type AutoPickUseCase struct {
	catalog    interfaces.ICatalogRepository
	scores     interfaces.IScoreRepository
	orders     interfaces.IOrderHistoryRepository
	users      interfaces.IUserRepository
	catRules   interfaces.ICategoryRuleRepository
	stockRules *cache.StockRuleCache
	profiles   interfaces.IAssortmentProfileRepository
	drafts     interfaces.IDraftRepository
	cart       interfaces.ICartRepository
	opts       AutoPickOptions
}

var _ IAutoPickUseCase = (*AutoPickUseCase)(nil)

func NewAutoPickUseCase(
	catalog interfaces.ICatalogRepository,
	scores interfaces.IScoreRepository,
	orders interfaces.IOrderHistoryRepository,
	users interfaces.IUserRepository,
	catRules interfaces.ICategoryRuleRepository,
	stockRules *cache.StockRuleCache,
	profiles interfaces.IAssortmentProfileRepository,
	drafts interfaces.IDraftRepository,
	cart interfaces.ICartRepository,
	opts AutoPickOptions,
) *AutoPickUseCase {
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = DefaultAutoPickOptions().LookbackDays
	}
	if opts.UnseenShare < 0 {
		opts.UnseenShare = DefaultAutoPickOptions().UnseenShare
	}
	if opts.DefaultTarget <= 0 {
		opts.DefaultTarget = DefaultAutoPickOptions().DefaultTarget
	}
	if opts.DraftTTL <= 0 {
		opts.DraftTTL = DefaultAutoPickOptions().DraftTTL
	}
	return &AutoPickUseCase{
		catalog:    catalog,
		scores:     scores,
		orders:     orders,
		users:      users,
		catRules:   catRules,
		stockRules: stockRules,
		profiles:   profiles,
		drafts:     drafts,
		cart:       cart,
		opts:       opts,
	}
}

func (u *AutoPickUseCase) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	cmd.StoreID = strings.TrimSpace(cmd.StoreID)
	if cmd.UserID == "" {
		return GenerateResult{}, ErrInvalidUserID
	}
	if cmd.StoreID == "" {
		return GenerateResult{}, ErrInvalidStoreID
	}
	if cmd.MinSum < 0 || cmd.MaxSum < 0 || cmd.MaxPricePerItem < 0 || cmd.AssortmentMode < 0 {
		return GenerateResult{}, ErrInvalidBudgetBounds
	}
	if cmd.MaxSum > 0 && cmd.MinSum > cmd.MaxSum {
		return GenerateResult{}, ErrInvalidBudgetBounds
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -u.opts.LookbackDays)

	// The collaborator reads are mutually independent; fetch them together
	// and join before computing.
	var (
		orders     []entities.Order
		products   []entities.Product
		catRules   []entities.CategoryRule
		stockRules []entities.StockRule
		profile    *entities.AssortmentProfile
		modifier   float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = u.orders.ListCompletedSince(gctx, cmd.UserID, since)
		return err
	})
	g.Go(func() (err error) {
		products, err = u.catalog.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		catRules, err = u.catRules.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		stockRules, err = u.stockRules.Get(gctx)
		return err
	})
	g.Go(func() (err error) {
		profile, err = u.profiles.GetDefault(gctx)
		return err
	})
	g.Go(func() (err error) {
		modifier, err = u.users.GetPriceModifier(gctx, cmd.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[autopick][usecase] collaborator fetch failed user_id=%s err=%v", cmd.UserID, err)
		return GenerateResult{}, err
	}

	scores := map[string]entities.ProductScore{}
	if len(products) > 0 {
		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		var err error
		scores, err = u.scores.GetByProductIDs(ctx, ids)
		if err != nil {
			log.Printf("[autopick][usecase] score fetch failed user_id=%s err=%v", cmd.UserID, err)
			return GenerateResult{}, err
		}
	}

	hist := autopick.AggregateHistory(orders)
	ranked, diag := autopick.Rank(products, scores, hist, autopick.RankParams{
		ModifierPercent:   modifier,
		ExcludeCategories: cmd.ExcludeCategories,
		IncludeCategories: cmd.IncludeCategories,
		MaxPricePerItem:   cmd.MaxPricePerItem,
		AssortmentMode:    cmd.AssortmentMode,
		StockRules:        stockRules,
		Now:               now,
	})
	diag.CheapestExceedsMaxBudget = cmd.MaxSum > 0 && diag.CheapestPrice > cmd.MaxSum

	cats := make([]string, 0, len(ranked))
	for _, c := range ranked {
		cats = append(cats, autopick.CategoryKey(c.Product.Category))
	}
	weights := autopick.BuildCategoryWeights(hist.PerCategory, profile, cats)

	target := cmd.MaxSum
	if target <= 0 {
		target = cmd.MinSum
	}
	if target <= 0 {
		target = hist.AvgOrderTotal()
	}
	if target <= 0 {
		target = u.opts.DefaultTarget
	}
	upper := cmd.MaxSum
	if upper <= 0 {
		upper = target * 1.05
	}
	lower := cmd.MinSum
	if lower <= 0 {
		lower = target * 0.8
	}

	seq := autopick.Interleave(ranked, u.opts.UnseenShare)
	alloc, err := autopick.Allocate(seq, hist, autopick.AllocateParams{
		Target:     target,
		LowerBound: lower,
		UpperBound: upper,
		MaxBudget:  cmd.MaxSum,
		Weights:    weights,
		Rules:      catRules,
	})
	if err != nil {
		log.Printf("[autopick][usecase] allocation failed user_id=%s candidates=%d err=%v", cmd.UserID, len(ranked), err)
		return GenerateResult{Diagnostics: diag}, err
	}

	draft := entities.AutoPickDraft{
		ID:      uuid.NewString(),
		UserID:  cmd.UserID,
		StoreID: cmd.StoreID,
		Params: entities.DraftParams{
			MinSum:            cmd.MinSum,
			MaxSum:            cmd.MaxSum,
			MaxPricePerItem:   cmd.MaxPricePerItem,
			AssortmentMode:    cmd.AssortmentMode,
			ExcludeCategories: cmd.ExcludeCategories,
			IncludeCategories: cmd.IncludeCategories,
			Target:            target,
			LowerBound:        lower,
			UpperBound:        upper,
		},
		Items:     alloc.Items,
		Total:     alloc.Total,
		Status:    entities.DraftStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(u.opts.DraftTTL),
	}
	created, err := u.drafts.Create(ctx, draft)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Printf("[autopick][usecase] draft created draft_id=%s user_id=%s items=%d total=%.2f", created.ID, cmd.UserID, len(created.Items), created.Total)
	return GenerateResult{Draft: created, Diagnostics: diag}, nil
}

func (u *AutoPickUseCase) ApplyDraft(ctx context.Context, draftID, userID, storeID string) (ApplyResult, error) {
	draftID = strings.TrimSpace(draftID)
	userID = strings.TrimSpace(userID)
	if draftID == "" {
		return ApplyResult{}, ErrInvalidDraftID
	}
	if userID == "" {
		return ApplyResult{}, ErrInvalidUserID
	}

	d, err := u.drafts.GetByID(ctx, draftID)
	if err != nil {
		return ApplyResult{}, err
	}
	if d.ID == "" {
		return ApplyResult{}, ErrDraftNotFound
	}
	if d.UserID != userID {
		return ApplyResult{}, ErrDraftNotOwned
	}
	if d.Status != entities.DraftStatusPending {
		return ApplyResult{}, ErrDraftWrongStatus
	}

	now := time.Now().UTC()
	if d.Expired(now) {
		if _, err := u.drafts.TransitionStatus(ctx, d.ID, entities.DraftStatusPending, entities.DraftStatusExpired); err != nil {
			log.Printf("[autopick][usecase] expiry transition failed draft_id=%s err=%v", d.ID, err)
		}
		return ApplyResult{}, ErrDraftExpired
	}

	if storeID = strings.TrimSpace(storeID); storeID == "" {
		storeID = d.StoreID
	}

	ids := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := u.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return ApplyResult{}, err
	}
	stockRules, err := u.stockRules.Get(ctx)
	if err != nil {
		return ApplyResult{}, err
	}
	modifier, err := u.users.GetPriceModifier(ctx, userID)
	if err != nil {
		return ApplyResult{}, err
	}

	// Stock and prices may have drifted since generation; every line is
	// re-validated against current product state.
	var res ApplyResult
	for _, it := range d.Items {
		p, ok := products[it.ProductID]
		if !ok || p.Archived {
			res.SkippedItems++
			continue
		}
		price := autopick.ResolvePrice(p, modifier, now)
		if autopick.UnavailableByStockRule(stockRules, price.Effective, p.Stock) {
			res.SkippedItems++
			continue
		}
		qty := it.Quantity
		if qty > p.Stock {
			qty = p.Stock
		}
		if qty <= 0 {
			res.SkippedItems++
			continue
		}
		if _, err := u.cart.Upsert(ctx, entities.CartLine{
			UserID:    userID,
			StoreID:   storeID,
			ProductID: it.ProductID,
			Quantity:  qty,
			Price:     price.Effective,
			UpdatedAt: now,
		}); err != nil {
			return ApplyResult{}, err
		}
		res.AppliedItems++
	}

	// The draft is applied even when zero lines survived; the conditional
	// transition serializes concurrent apply attempts.
	applied, err := u.drafts.TransitionStatus(ctx, d.ID, entities.DraftStatusPending, entities.DraftStatusApplied)
	if err != nil {
		return ApplyResult{}, err
	}
	if applied.ID == "" {
		return ApplyResult{}, ErrDraftWrongStatus
	}
	log.Printf("[autopick][usecase] draft applied draft_id=%s user_id=%s applied=%d skipped=%d", d.ID, userID, res.AppliedItems, res.SkippedItems)
	return res, nil
}

func (u *AutoPickUseCase) GetDraft(ctx context.Context, draftID, userID string) (entities.AutoPickDraft, error) {
	draftID = strings.TrimSpace(draftID)
	userID = strings.TrimSpace(userID)
	if draftID == "" {
		return entities.AutoPickDraft{}, ErrInvalidDraftID
	}
	if userID == "" {
		return entities.AutoPickDraft{}, ErrInvalidUserID
	}

	d, err := u.drafts.GetByID(ctx, draftID)
	if err != nil {
		return entities.AutoPickDraft{}, err
	}
	if d.ID == "" || d.UserID != userID {
		return entities.AutoPickDraft{}, ErrDraftNotFound
	}
	return d, nil
}
