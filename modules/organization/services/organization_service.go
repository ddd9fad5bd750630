package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/pagination"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type OrganizationService struct {
	repo      organization.Repository
	phones    organization.PhoneRepository
	addresses organization.AddressRepository
	links     organization.ActivityLinkRepository
	publisher eventbus.EventBus
}

func NewOrganizationService(
	repo organization.Repository,
	phones organization.PhoneRepository,
	addresses organization.AddressRepository,
	links organization.ActivityLinkRepository,
	publisher eventbus.EventBus,
) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		phones:    phones,
		addresses: addresses,
		links:     links,
		publisher: publisher,
	}
}

func (s *OrganizationService) GetBySID(ctx context.Context, sid uuid.UUID, opts organization.LoadOptions) (organization.Full, error) {
	o, err := s.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			composables.UseLogger(ctx).WithField("sid", sid).Error("organization not found")
		}
		return organization.Full{}, err
	}
	loaded, err := s.repo.Load(ctx, []organization.Organization{o}, opts)
	if err != nil {
		return organization.Full{}, err
	}
	composables.UseLogger(ctx).WithField("sid", sid).Debug("organization retrieved")
	return loaded[0], nil
}

func (s *OrganizationService) GetByName(ctx context.Context, name string) (organization.Organization, error) {
	return s.repo.GetByName(ctx, name)
}

// GetByActivitySIDs lists the organizations directly tagged with any of sids.
func (s *OrganizationService) GetByActivitySIDs(ctx context.Context, sids []uuid.UUID, opts organization.LoadOptions) ([]organization.Full, error) {
	if len(sids) == 0 {
		return []organization.Full{}, nil
	}
	orgs, err := s.repo.GetByActivitySIDs(ctx, sids)
	if err != nil {
		return nil, err
	}
	return s.repo.Load(ctx, orgs, opts)
}

func (s *OrganizationService) SearchByName(ctx context.Context, name string, opts organization.LoadOptions, params pagination.Params) ([]organization.Full, int64, error) {
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}
	orgs, total, err := s.repo.SearchByName(ctx, name, params)
	if err != nil {
		return nil, 0, err
	}
	loaded, err := s.repo.Load(ctx, orgs, opts)
	if err != nil {
		return nil, 0, err
	}
	return loaded, total, nil
}

// Ensure returns the organization with the given name, creating it when
// absent. The flag reports whether it was created. No event is published;
// callers announce the creation through NotifyCreated once it is committed.
func (s *OrganizationService) Ensure(ctx context.Context, name string) (organization.Organization, bool, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, organization.ErrNotFound) {
		return organization.Organization{}, false, err
	}
	created, err := s.repo.Create(ctx, organization.New(name))
	if err != nil {
		return organization.Organization{}, false, err
	}
	return created, true, nil
}

func (s *OrganizationService) NotifyCreated(o organization.Organization) {
	s.publisher.Publish(&organization.CreatedEvent{Result: o})
}

// AddPhone, SetAddress and LinkActivity leave an existing row untouched.

func (s *OrganizationService) AddPhone(ctx context.Context, organizationSID uuid.UUID, phone string) (organization.Phone, error) {
	existing, err := s.phones.GetByOrganizationAndPhone(ctx, organizationSID, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return organization.Phone{}, err
	}
	return s.phones.Create(ctx, organization.NewPhone(organizationSID, phone))
}

func (s *OrganizationService) SetAddress(ctx context.Context, organizationSID, buildingSID uuid.UUID, office string) (organization.Address, error) {
	existing, err := s.addresses.GetByOrganizationAndBuildingSIDs(ctx, organizationSID, buildingSID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return organization.Address{}, err
	}
	return s.addresses.Create(ctx, organization.NewAddress(organizationSID, buildingSID, office))
}

func (s *OrganizationService) LinkActivity(ctx context.Context, organizationSID, activitySID uuid.UUID) (organization.ActivityLink, error) {
	existing, err := s.links.GetByOrganizationAndActivitySIDs(ctx, organizationSID, activitySID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return organization.ActivityLink{}, err
	}
	return s.links.Create(ctx, organization.NewActivityLink(organizationSID, activitySID))
}

func (s *OrganizationService) Update(ctx context.Context, sid uuid.UUID, dto *organization.UpdateDTO) (organization.Organization, error) {
	if dto == nil {
		return organization.Organization{}, serrors.Validation(nil).WithCause("missing payload")
	}
	if err := dto.Ok(); err != nil {
		return organization.Organization{}, err
	}
	var before, updated organization.Organization
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		if before, err = s.repo.GetBySID(txCtx, sid); err != nil {
			return err
		}
		updated, err = s.repo.Update(txCtx, before.Rename(dto.Name))
		return err
	})
	if err != nil {
		return organization.Organization{}, err
	}
	s.publisher.Publish(&organization.UpdatedEvent{Data: before, Result: updated})
	return updated, nil
}

func (s *OrganizationService) Delete(ctx context.Context, sid uuid.UUID) (organization.Organization, error) {
	var deleted organization.Organization
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		if deleted, err = s.repo.GetBySID(txCtx, sid); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, sid)
	})
	if err != nil {
		return organization.Organization{}, err
	}
	s.publisher.Publish(&organization.DeletedEvent{Result: deleted})
	return deleted, nil
}
