package activity

import (
	"context"

	"github.com/google/uuid"
)

// Repository lookups return ErrNotFound for a missing activity.
type Repository interface {
	GetBySID(ctx context.Context, sid uuid.UUID) (Activity, error)
	GetByName(ctx context.Context, name string) (Activity, error)
	GetAll(ctx context.Context) ([]Activity, error)
	// GetAllDescendantActivitySIDs returns the named activity and everything
	// below it. An unknown name yields an empty slice.
	GetAllDescendantActivitySIDs(ctx context.Context, activityName string) ([]uuid.UUID, error)
	// Depth counts the hops from sid up to its root.
	Depth(ctx context.Context, sid uuid.UUID) (int, error)
	Create(ctx context.Context, a Activity) (Activity, error)
	Update(ctx context.Context, a Activity) (Activity, error)
	Delete(ctx context.Context, sid uuid.UUID) error
}
