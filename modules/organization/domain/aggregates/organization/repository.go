package organization

import (
	"context"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/pkg/pagination"
)

// Repository lookups return ErrNotFound for a missing organization.
type Repository interface {
	GetBySID(ctx context.Context, sid uuid.UUID) (Organization, error)
	GetByName(ctx context.Context, name string) (Organization, error)
	// GetByActivitySIDs returns each organization tagged with any of sids exactly once.
	GetByActivitySIDs(ctx context.Context, sids []uuid.UUID) ([]Organization, error)
	// SearchByName matches name as a case-insensitive substring and reports
	// the total number of matches alongside the requested page.
	SearchByName(ctx context.Context, name string, params pagination.Params) ([]Organization, int64, error)
	// Load fetches the relations opts asks for, for all orgs at once.
	Load(ctx context.Context, orgs []Organization, opts LoadOptions) ([]Full, error)
	Create(ctx context.Context, o Organization) (Organization, error)
	Update(ctx context.Context, o Organization) (Organization, error)
	Delete(ctx context.Context, sid uuid.UUID) error
}

// The relation repositories report a miss with repo.ErrNotFound.

type PhoneRepository interface {
	GetByOrganizationAndPhone(ctx context.Context, organizationSID uuid.UUID, phone string) (Phone, error)
	Create(ctx context.Context, p Phone) (Phone, error)
}

type AddressRepository interface {
	GetByOrganizationAndBuildingSIDs(ctx context.Context, organizationSID, buildingSID uuid.UUID) (Address, error)
	Create(ctx context.Context, a Address) (Address, error)
}

type ActivityLinkRepository interface {
	GetByOrganizationAndActivitySIDs(ctx context.Context, organizationSID, activitySID uuid.UUID) (ActivityLink, error)
	Create(ctx context.Context, l ActivityLink) (ActivityLink, error)
}
