package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type BuildingService struct {
	repo      building.Repository
	publisher eventbus.EventBus
}

func NewBuildingService(repo building.Repository, publisher eventbus.EventBus) *BuildingService {
	return &BuildingService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *BuildingService) GetBySID(ctx context.Context, sid uuid.UUID) (building.Building, error) {
	b, err := s.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, building.ErrNotFound) {
			composables.UseLogger(ctx).WithField("sid", sid).Error("building not found")
		}
		return building.Building{}, err
	}
	return b, nil
}

// GetWithOrganizations returns the building together with every organization it houses.
func (s *BuildingService) GetWithOrganizations(ctx context.Context, sid uuid.UUID) (building.WithOrganizations, error) {
	b, err := s.GetBySID(ctx, sid)
	if err != nil {
		return building.WithOrganizations{}, err
	}
	orgs, err := s.repo.GetOrganizations(ctx, []uuid.UUID{sid})
	if err != nil {
		return building.WithOrganizations{}, err
	}
	return withOrganizations(b, orgs), nil
}

func (s *BuildingService) GetByAddressAndLocation(ctx context.Context, address string, latitude, longitude float64) (building.Building, error) {
	return s.repo.GetByAddressAndLocation(ctx, address, latitude, longitude)
}

// GetFilteredAll lists the buildings inside the filter box with their
// organizations, loaded in a single query.
func (s *BuildingService) GetFilteredAll(ctx context.Context, filter building.CoordinatesFilter) ([]building.WithOrganizations, error) {
	if err := filter.Ok(); err != nil {
		return nil, err
	}
	buildings, err := s.repo.GetFilteredAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	sids := make([]uuid.UUID, 0, len(buildings))
	for _, b := range buildings {
		sids = append(sids, b.SID())
	}
	orgs, err := s.repo.GetOrganizations(ctx, sids)
	if err != nil {
		return nil, err
	}
	out := make([]building.WithOrganizations, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, withOrganizations(b, orgs))
	}
	composables.UseLogger(ctx).Debugf("filtered %d buildings", len(out))
	return out, nil
}

// Create refuses a second building at the same address and coordinates.
func (s *BuildingService) Create(ctx context.Context, dto *building.CreateDTO) (building.Building, error) {
	if dto == nil {
		return building.Building{}, serrors.Validation(nil).WithCause("missing payload")
	}
	if err := dto.Ok(); err != nil {
		return building.Building{}, err
	}
	var created building.Building
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetByAddressAndLocation(txCtx, dto.Address, dto.Latitude, dto.Longitude)
		if err == nil {
			return serrors.New(serrors.NotUnique).WithCause("building %s already exists at %q", existing.SID(), dto.Address)
		}
		if !errors.Is(err, building.ErrNotFound) {
			return err
		}
		created, err = s.repo.Create(txCtx, dto.ToEntity())
		return err
	})
	if err != nil {
		return building.Building{}, err
	}
	s.publisher.Publish(&building.CreatedEvent{Result: created})
	composables.UseLogger(ctx).WithField("sid", created.SID()).Debug("building created")
	return created, nil
}

func withOrganizations(b building.Building, orgs map[uuid.UUID][]building.OrganizationRef) building.WithOrganizations {
	refs := orgs[b.SID()]
	if refs == nil {
		refs = []building.OrganizationRef{}
	}
	return building.WithOrganizations{Building: b, Organizations: refs}
}
