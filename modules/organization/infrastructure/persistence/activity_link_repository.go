package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/repo"
)

const (
	activityLinkQuery = `
		SELECT organization_sid, activity_sid, created_at
		FROM organization.organization_activity
		WHERE organization_sid = $1 AND activity_sid = $2`

	activityLinkInsertQuery = `
		INSERT INTO organization.organization_activity (organization_sid, activity_sid, created_at)
		VALUES ($1, $2, $3)`
)

type ActivityLinkRepository struct{}

func NewActivityLinkRepository() organization.ActivityLinkRepository {
	return &ActivityLinkRepository{}
}

func (r *ActivityLinkRepository) GetByOrganizationAndActivitySIDs(ctx context.Context, organizationSID, activitySID uuid.UUID) (organization.ActivityLink, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.ActivityLink{}, err
	}
	var row OrganizationActivity
	if err := tx.QueryRow(ctx, activityLinkQuery, organizationSID, activitySID).
		Scan(&row.OrganizationSID, &row.ActivitySID, &row.CreatedAt); err != nil {
		return organization.ActivityLink{}, repo.MapError(err)
	}
	return ToDomainActivityLink(row), nil
}

func (r *ActivityLinkRepository) Create(ctx context.Context, l organization.ActivityLink) (organization.ActivityLink, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.ActivityLink{}, err
	}
	row := ToDBActivityLink(l)
	if _, err := tx.Exec(ctx, activityLinkInsertQuery, row.OrganizationSID, row.ActivitySID, row.CreatedAt); err != nil {
		return organization.ActivityLink{}, repo.MapError(err)
	}
	return l, nil
}
