package interfaces

import (
	"context"

	"retailcore/internal/domain/entities"
)

// IDraftRepository abstracts DynamoDB persistence for AutoPickDraft.
//
// Draft creation is the sole persistence point of a generate call and is
// atomic: either the whole draft is written or none of it.

type IDraftRepository interface {
	Create(ctx context.Context, d entities.AutoPickDraft) (entities.AutoPickDraft, error)
	// GetByID returns the zero value when the draft does not exist.
	GetByID(ctx context.Context, id string) (entities.AutoPickDraft, error)
	// TransitionStatus conditionally moves a draft from one status to
	// another. It returns the zero value when the draft is missing or not
	// in the expected status, so concurrent callers serialize on the guard.
	TransitionStatus(ctx context.Context, id string, from, to entities.DraftStatus) (entities.AutoPickDraft, error)
}
