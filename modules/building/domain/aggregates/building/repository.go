package building

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetBySID(ctx context.Context, sid uuid.UUID) (Building, error)
	// GetByAddressAndLocation is the natural-key lookup used to avoid duplicates.
	GetByAddressAndLocation(ctx context.Context, address string, latitude, longitude float64) (Building, error)
	GetFilteredAll(ctx context.Context, filter CoordinatesFilter) ([]Building, error)
	// GetOrganizations groups the organizations housed in each of the given buildings.
	GetOrganizations(ctx context.Context, sids []uuid.UUID) (map[uuid.UUID][]OrganizationRef, error)
	Create(ctx context.Context, b Building) (Building, error)
}
