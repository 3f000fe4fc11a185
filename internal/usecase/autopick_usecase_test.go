package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"retailcore/internal/domain/autopick"
	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/cache"
	mock_interfaces "retailcore/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type autoPickMocks struct {
	catalog  *mock_interfaces.MockICatalogRepository
	scores   *mock_interfaces.MockIScoreRepository
	orders   *mock_interfaces.MockIOrderHistoryRepository
	users    *mock_interfaces.MockIUserRepository
	catRules *mock_interfaces.MockICategoryRuleRepository
	stock    *mock_interfaces.MockIStockRuleRepository
	profiles *mock_interfaces.MockIAssortmentProfileRepository
	drafts   *mock_interfaces.MockIDraftRepository
	cart     *mock_interfaces.MockICartRepository
}

func newAutoPickFixture(t *testing.T) (*AutoPickUseCase, autoPickMocks) {
	ctrl := gomock.NewController(t)
	m := autoPickMocks{
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		scores:   mock_interfaces.NewMockIScoreRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderHistoryRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		catRules: mock_interfaces.NewMockICategoryRuleRepository(ctrl),
		stock:    mock_interfaces.NewMockIStockRuleRepository(ctrl),
		profiles: mock_interfaces.NewMockIAssortmentProfileRepository(ctrl),
		drafts:   mock_interfaces.NewMockIDraftRepository(ctrl),
		cart:     mock_interfaces.NewMockICartRepository(ctrl),
	}
	uc := NewAutoPickUseCase(
		m.catalog, m.scores, m.orders, m.users, m.catRules,
		cache.NewStockRuleCache(m.stock), m.profiles, m.drafts, m.cart,
		AutoPickOptions{},
	)
	return uc, m
}

func snackProducts(price float64, stock int) []entities.Product {
	return []entities.Product{
		{ID: "p-1", Name: "Chips", Category: "snacks", BasePrice: price, Stock: stock},
		{ID: "p-2", Name: "Crackers", Category: "snacks", BasePrice: price, Stock: stock},
		{ID: "p-3", Name: "Pretzels", Category: "snacks", BasePrice: price, Stock: stock},
	}
}

func TestAutoPickUseCase_GenerateValidation(t *testing.T) {
	uc, _ := newAutoPickFixture(t)

	cases := []struct {
		name string
		cmd  GenerateCommand
		want error
	}{
		{"blank user", GenerateCommand{UserID: "  ", StoreID: "store-1"}, ErrInvalidUserID},
		{"blank store", GenerateCommand{UserID: "user-1", StoreID: ""}, ErrInvalidStoreID},
		{"negative min", GenerateCommand{UserID: "user-1", StoreID: "store-1", MinSum: -1}, ErrInvalidBudgetBounds},
		{"negative max price", GenerateCommand{UserID: "user-1", StoreID: "store-1", MaxPricePerItem: -5}, ErrInvalidBudgetBounds},
		{"min above max", GenerateCommand{UserID: "user-1", StoreID: "store-1", MinSum: 500, MaxSum: 100}, ErrInvalidBudgetBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Generate(context.Background(), tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAutoPickUseCase_Generate(t *testing.T) {
	t.Run("creates pending draft within bounds", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)

		m.orders.EXPECT().ListCompletedSince(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
		m.catalog.EXPECT().ListActive(gomock.Any()).Return(snackProducts(100, 50), nil)
		m.catRules.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.stock.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.profiles.EXPECT().GetDefault(gomock.Any()).Return(nil, nil)
		m.users.EXPECT().GetPriceModifier(gomock.Any(), "user-1").Return(0.0, nil)
		m.scores.EXPECT().GetByProductIDs(gomock.Any(), []string{"p-1", "p-2", "p-3"}).Return(map[string]entities.ProductScore{}, nil)
		m.drafts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AutoPickDraft{})).DoAndReturn(
			func(_ context.Context, d entities.AutoPickDraft) (entities.AutoPickDraft, error) {
				if d.ID == "" || d.UserID != "user-1" || d.StoreID != "store-1" {
					t.Fatalf("unexpected draft identity: %+v", d)
				}
				if d.Status != entities.DraftStatusPending {
					t.Fatalf("expected pending draft, got %s", d.Status)
				}
				if !d.ExpiresAt.After(d.CreatedAt) {
					t.Fatalf("expected expiry after creation")
				}
				if d.Params.Target != 300 || d.Params.LowerBound != 200 || d.Params.UpperBound != 300 {
					t.Fatalf("unexpected bounds: %+v", d.Params)
				}
				return d, nil
			},
		)

		res, err := uc.Generate(context.Background(), GenerateCommand{
			UserID: "user-1", StoreID: "store-1", MinSum: 200, MaxSum: 300,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Draft.Items) != 1 || res.Draft.Items[0].Quantity != 3 {
			t.Fatalf("unexpected items: %+v", res.Draft.Items)
		}
		if res.Draft.Total != 300 {
			t.Fatalf("expected total 300, got %.2f", res.Draft.Total)
		}
	})

	t.Run("returns diagnostics when every product is filtered", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)

		m.orders.EXPECT().ListCompletedSince(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
		m.catalog.EXPECT().ListActive(gomock.Any()).Return(snackProducts(100, 50), nil)
		m.catRules.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.stock.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.profiles.EXPECT().GetDefault(gomock.Any()).Return(nil, nil)
		m.users.EXPECT().GetPriceModifier(gomock.Any(), "user-1").Return(0.0, nil)
		m.scores.EXPECT().GetByProductIDs(gomock.Any(), gomock.Any()).Return(map[string]entities.ProductScore{}, nil)

		res, err := uc.Generate(context.Background(), GenerateCommand{
			UserID: "user-1", StoreID: "store-1", MinSum: 200, MaxSum: 300, MaxPricePerItem: 50,
		})
		if !errors.Is(err, autopick.ErrNoSelection) {
			t.Fatalf("expected ErrNoSelection, got %v", err)
		}
		if res.Diagnostics.Skipped.MaxPrice != 3 {
			t.Fatalf("expected 3 max-price skips, got %+v", res.Diagnostics.Skipped)
		}
	})

	t.Run("collaborator fetch error bubbles up", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)

		m.orders.EXPECT().ListCompletedSince(gomock.Any(), "user-1", gomock.Any()).Return(nil, errors.New("db"))
		m.catalog.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()
		m.catRules.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.stock.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.profiles.EXPECT().GetDefault(gomock.Any()).Return(nil, nil).AnyTimes()
		m.users.EXPECT().GetPriceModifier(gomock.Any(), "user-1").Return(0.0, nil).AnyTimes()

		_, err := uc.Generate(context.Background(), GenerateCommand{UserID: "user-1", StoreID: "store-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func pendingDraft(now time.Time) entities.AutoPickDraft {
	return entities.AutoPickDraft{
		ID:      "draft-1",
		UserID:  "user-1",
		StoreID: "store-1",
		Items: []entities.DraftItem{
			{ProductID: "p-1", Quantity: 5, Price: 20, Total: 100},
			{ProductID: "p-2", Quantity: 2, Price: 30, Total: 60},
		},
		Total:     160,
		Status:    entities.DraftStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestAutoPickUseCase_ApplyDraft(t *testing.T) {
	t.Run("invalid draft id", func(t *testing.T) {
		uc, _ := newAutoPickFixture(t)
		_, err := uc.ApplyDraft(context.Background(), "  ", "user-1", "")
		if !errors.Is(err, ErrInvalidDraftID) {
			t.Fatalf("expected ErrInvalidDraftID, got %v", err)
		}
	})

	t.Run("draft not found", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(entities.AutoPickDraft{}, nil)

		_, err := uc.ApplyDraft(context.Background(), "draft-1", "user-1", "")
		if !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("draft owned by another user", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)

		_, err := uc.ApplyDraft(context.Background(), "draft-1", "user-2", "")
		if !errors.Is(err, ErrDraftNotOwned) {
			t.Fatalf("expected ErrDraftNotOwned, got %v", err)
		}
	})

	t.Run("already applied", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		d.Status = entities.DraftStatusApplied
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)

		_, err := uc.ApplyDraft(context.Background(), "draft-1", "user-1", "")
		if !errors.Is(err, ErrDraftWrongStatus) {
			t.Fatalf("expected ErrDraftWrongStatus, got %v", err)
		}
	})

	t.Run("expired draft is transitioned and rejected", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC().Add(-3 * time.Hour))
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		m.drafts.EXPECT().TransitionStatus(gomock.Any(), "draft-1", entities.DraftStatusPending, entities.DraftStatusExpired).Return(entities.AutoPickDraft{}, nil)

		_, err := uc.ApplyDraft(context.Background(), "draft-1", "user-1", "")
		if !errors.Is(err, ErrDraftExpired) {
			t.Fatalf("expected ErrDraftExpired, got %v", err)
		}
	})

	t.Run("applies surviving lines and skips drifted ones", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		// p-2 vanished from the catalog; p-1 dropped to 3 in stock.
		m.catalog.EXPECT().GetByIDs(gomock.Any(), []string{"p-1", "p-2"}).Return(map[string]entities.Product{
			"p-1": {ID: "p-1", Name: "Chips", Category: "snacks", BasePrice: 20, Stock: 3},
		}, nil)
		m.stock.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.users.EXPECT().GetPriceModifier(gomock.Any(), "user-1").Return(0.0, nil)
		m.cart.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.CartLine{})).DoAndReturn(
			func(_ context.Context, line entities.CartLine) (entities.CartLine, error) {
				if line.UserID != "user-1" || line.StoreID != "store-1" || line.ProductID != "p-1" {
					t.Fatalf("unexpected cart line: %+v", line)
				}
				if line.Quantity != 3 {
					t.Fatalf("expected quantity clamped to stock, got %d", line.Quantity)
				}
				if line.Price != 20 {
					t.Fatalf("expected current price 20, got %.2f", line.Price)
				}
				return line, nil
			},
		)
		m.drafts.EXPECT().TransitionStatus(gomock.Any(), "draft-1", entities.DraftStatusPending, entities.DraftStatusApplied).Return(d, nil)

		res, err := uc.ApplyDraft(context.Background(), "draft-1", "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AppliedItems != 1 || res.SkippedItems != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("stock rule marks line unavailable", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		d.Items = d.Items[:1]
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), []string{"p-1"}).Return(map[string]entities.Product{
			"p-1": {ID: "p-1", BasePrice: 20, Stock: 4},
		}, nil)
		m.stock.EXPECT().List(gomock.Any()).Return([]entities.StockRule{
			{ID: "r-1", Priority: 1, MaxStock: 5, Availability: entities.StockUnavailable},
		}, nil)
		m.users.EXPECT().GetPriceModifier(gomock.Any(), "user-1").Return(0.0, nil)
		m.drafts.EXPECT().TransitionStatus(gomock.Any(), "draft-1", entities.DraftStatusPending, entities.DraftStatusApplied).Return(d, nil)

		res, err := uc.ApplyDraft(context.Background(), "draft-1", "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AppliedItems != 0 || res.SkippedItems != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("lost transition race reports wrong status", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		d.Items = nil
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		m.catalog.EXPECT().GetByIDs(gomock.Any(), []string{}).Return(map[string]entities.Product{}, nil)
		m.stock.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.users.EXPECT().GetPriceModifier(gomock.Any(), "user-1").Return(0.0, nil)
		m.drafts.EXPECT().TransitionStatus(gomock.Any(), "draft-1", entities.DraftStatusPending, entities.DraftStatusApplied).Return(entities.AutoPickDraft{}, nil)

		_, err := uc.ApplyDraft(context.Background(), "draft-1", "user-1", "")
		if !errors.Is(err, ErrDraftWrongStatus) {
			t.Fatalf("expected ErrDraftWrongStatus, got %v", err)
		}
	})
}

func TestAutoPickUseCase_GetDraft(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc, _ := newAutoPickFixture(t)
		if _, err := uc.GetDraft(context.Background(), "", "user-1"); !errors.Is(err, ErrInvalidDraftID) {
			t.Fatalf("expected ErrInvalidDraftID, got %v", err)
		}
		if _, err := uc.GetDraft(context.Background(), "draft-1", " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("missing or foreign drafts read as not found", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-2").Return(entities.AutoPickDraft{}, nil)

		if _, err := uc.GetDraft(context.Background(), "draft-1", "user-2"); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound for foreign draft, got %v", err)
		}
		if _, err := uc.GetDraft(context.Background(), "draft-2", "user-1"); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound for missing draft, got %v", err)
		}
	})

	t.Run("owner reads draft back", func(t *testing.T) {
		uc, m := newAutoPickFixture(t)
		d := pendingDraft(time.Now().UTC())
		m.drafts.EXPECT().GetByID(gomock.Any(), "draft-1").Return(d, nil)

		got, err := uc.GetDraft(context.Background(), "draft-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "draft-1" || len(got.Items) != 2 {
			t.Fatalf("unexpected draft: %+v", got)
		}
	})
}
