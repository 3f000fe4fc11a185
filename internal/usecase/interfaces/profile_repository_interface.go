package interfaces

import (
	"context"

	"retailcore/internal/domain/entities"
)

// IAssortmentProfileRepository abstracts DynamoDB persistence for
// AssortmentProfile.
//
// The default flag is unique system-wide; ClearDefaults supports the
// write path that enforces it.

type IAssortmentProfileRepository interface {
	List(ctx context.Context) ([]entities.AssortmentProfile, error)
	// GetDefault returns the current default profile, or nil when none is
	// marked default.
	GetDefault(ctx context.Context) (*entities.AssortmentProfile, error)
	Create(ctx context.Context, p entities.AssortmentProfile) (entities.AssortmentProfile, error)
	ClearDefaults(ctx context.Context) error
	Delete(ctx context.Context, id string) (bool, error)
}
