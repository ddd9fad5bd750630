package services

import (
	"context"

	"github.com/google/uuid"

	activityservices "github.com/iota-uz/org-directory/modules/activity/services"
	buildingservices "github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/pagination"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// OrganizationUseCase answers directory queries that need more than one
// domain. Every result is fully loaded.
type OrganizationUseCase struct {
	activities    *activityservices.ActivityService
	buildings     *buildingservices.BuildingService
	organizations *OrganizationService
}

func NewOrganizationUseCase(
	activities *activityservices.ActivityService,
	buildings *buildingservices.BuildingService,
	organizations *OrganizationService,
) *OrganizationUseCase {
	return &OrganizationUseCase{
		activities:    activities,
		buildings:     buildings,
		organizations: organizations,
	}
}

func (u *OrganizationUseCase) GetBySID(ctx context.Context, sid uuid.UUID) (organization.Full, error) {
	return u.organizations.GetBySID(ctx, sid, organization.FullLoad())
}

// SearchByDescendantActivity returns organizations tagged with the named
// activity or anything below it. An unknown name matches nothing.
func (u *OrganizationUseCase) SearchByDescendantActivity(ctx context.Context, activityName string) ([]organization.Full, error) {
	sids, err := u.activities.GetAllDescendantActivitySIDs(ctx, activityName)
	if err != nil {
		return nil, err
	}
	return u.organizations.GetByActivitySIDs(ctx, sids, organization.FullLoad())
}

// SearchByActivity returns organizations tagged with exactly the named
// activity. An unknown name is activity.ErrNotFound.
func (u *OrganizationUseCase) SearchByActivity(ctx context.Context, activityName string) ([]organization.Full, error) {
	a, err := u.activities.GetByName(ctx, activityName)
	if err != nil {
		return nil, err
	}
	return u.organizations.GetByActivitySIDs(ctx, []uuid.UUID{a.SID()}, organization.FullLoad())
}

func (u *OrganizationUseCase) SearchByName(ctx context.Context, name string, params pagination.Params) ([]organization.Full, int64, error) {
	return u.organizations.SearchByName(ctx, name, organization.FullLoad(), params)
}

// Register creates the organization described by dto, or extends the one
// that already carries its name. The building and every activity must exist.
func (u *OrganizationUseCase) Register(ctx context.Context, dto *organization.CreateDTO) (organization.Full, bool, error) {
	if dto == nil {
		return organization.Full{}, false, serrors.Validation(nil).WithCause("missing payload")
	}
	if err := dto.Ok(); err != nil {
		return organization.Full{}, false, err
	}
	logger := composables.UseLogger(ctx).WithField("organization", dto.Name)

	var registered organization.Organization
	var created bool
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		if dto.BuildingSID != nil {
			if _, err := u.buildings.GetBySID(txCtx, *dto.BuildingSID); err != nil {
				return err
			}
		}
		for _, activitySID := range dto.ActivitySIDs {
			if _, err := u.activities.GetBySID(txCtx, activitySID); err != nil {
				return err
			}
		}

		o, isNew, err := u.organizations.Ensure(txCtx, dto.Name)
		if err != nil {
			return err
		}
		registered, created = o, isNew
		sid := o.SID()
		for _, phone := range dto.PhoneNumbers {
			if _, err := u.organizations.AddPhone(txCtx, sid, phone); err != nil {
				return err
			}
		}
		if dto.BuildingSID != nil {
			if _, err := u.organizations.SetAddress(txCtx, sid, *dto.BuildingSID, dto.Office); err != nil {
				return err
			}
		}
		for _, activitySID := range dto.ActivitySIDs {
			if _, err := u.organizations.LinkActivity(txCtx, sid, activitySID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return organization.Full{}, false, err
	}
	if created {
		u.organizations.NotifyCreated(registered)
	}
	logger.WithField("created", created).Debug("organization registered")

	full, err := u.organizations.GetBySID(ctx, registered.SID(), organization.FullLoad())
	return full, created, err
}
