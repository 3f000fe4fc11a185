package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"retailcore/internal/domain/entities"
	"retailcore/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProfile   = errors.New("invalid assortment profile")
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrProfileNotFound  = errors.New("assortment profile not found")
)

// IProfileUseCase exposes the admin surface for assortment profiles, the
// category-weight fallback the engine uses for users without history.

type IProfileUseCase interface {
	CreateProfile(ctx context.Context, p entities.AssortmentProfile) (entities.AssortmentProfile, error)
	ListProfiles(ctx context.Context) ([]entities.AssortmentProfile, error)
	DeleteProfile(ctx context.Context, id string) error
}

type ProfileUseCase struct {
	profiles interfaces.IAssortmentProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(profiles interfaces.IAssortmentProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

func (u *ProfileUseCase) CreateProfile(ctx context.Context, p entities.AssortmentProfile) (entities.AssortmentProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || len(p.Weights) == 0 {
		return entities.AssortmentProfile{}, ErrInvalidProfile
	}
	for cat, w := range p.Weights {
		if strings.TrimSpace(cat) == "" || w < 0 {
			return entities.AssortmentProfile{}, ErrInvalidProfile
		}
	}

	// At most one default exists at a time; demote the others first.
	if p.Default {
		if err := u.profiles.ClearDefaults(ctx); err != nil {
			return entities.AssortmentProfile{}, err
		}
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	return u.profiles.Create(ctx, p)
}

func (u *ProfileUseCase) ListProfiles(ctx context.Context) ([]entities.AssortmentProfile, error) {
	return u.profiles.List(ctx)
}

func (u *ProfileUseCase) DeleteProfile(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProfileID
	}
	existed, err := u.profiles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrProfileNotFound
	}
	return nil
}
