package usecase

import (
	"context"
	"errors"
	"testing"

	"retailcore/internal/domain/entities"
	mock_interfaces "retailcore/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_CreateProfile(t *testing.T) {
	t.Run("blank name rejected", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.CreateProfile(context.Background(), entities.AssortmentProfile{Name: "  ", Weights: map[string]float64{"water": 1}})
		if !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("empty weights rejected", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.CreateProfile(context.Background(), entities.AssortmentProfile{Name: "balanced"})
		if !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.CreateProfile(context.Background(), entities.AssortmentProfile{
			Name:    "balanced",
			Weights: map[string]float64{"water": 1, "snacks": -0.5},
		})
		if !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("non-default create skips demotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssortmentProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AssortmentProfile{})).DoAndReturn(
			func(_ context.Context, p entities.AssortmentProfile) (entities.AssortmentProfile, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected stamped profile, got %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.CreateProfile(context.Background(), entities.AssortmentProfile{
			Name:    "balanced",
			Weights: map[string]float64{"water": 0.4, "snacks": 0.6},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("default create demotes the previous default first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssortmentProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().ClearDefaults(gomock.Any()).Return(nil),
			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AssortmentProfile{})).DoAndReturn(
				func(_ context.Context, p entities.AssortmentProfile) (entities.AssortmentProfile, error) {
					if !p.Default {
						t.Fatalf("expected default flag preserved")
					}
					return p, nil
				},
			),
		)

		_, err := uc.CreateProfile(context.Background(), entities.AssortmentProfile{
			Name:    "house",
			Weights: map[string]float64{"water": 1},
			Default: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("demotion failure aborts the create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssortmentProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().ClearDefaults(gomock.Any()).Return(errors.New("db"))

		_, err := uc.CreateProfile(context.Background(), entities.AssortmentProfile{
			Name:    "house",
			Weights: map[string]float64{"water": 1},
			Default: true,
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProfileUseCase_DeleteProfile(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		if err := uc.DeleteProfile(context.Background(), " "); !errors.Is(err, ErrInvalidProfileID) {
			t.Fatalf("expected ErrInvalidProfileID, got %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssortmentProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "ap-1").Return(false, nil)

		if err := uc.DeleteProfile(context.Background(), "ap-1"); !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("existing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAssortmentProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "ap-1").Return(true, nil)

		if err := uc.DeleteProfile(context.Background(), "ap-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
