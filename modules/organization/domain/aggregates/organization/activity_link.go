package organization

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLink tags an organization with a single activity. Tagging is
// direct: a link to a child says nothing about its ancestors.
type ActivityLink struct {
	organizationSID uuid.UUID
	activitySID     uuid.UUID
	createdAt       time.Time
}

func NewActivityLink(organizationSID, activitySID uuid.UUID) ActivityLink {
	return ActivityLink{
		organizationSID: organizationSID,
		activitySID:     activitySID,
		createdAt:       time.Now().UTC(),
	}
}

func HydrateActivityLink(organizationSID, activitySID uuid.UUID, createdAt time.Time) ActivityLink {
	return ActivityLink{
		organizationSID: organizationSID,
		activitySID:     activitySID,
		createdAt:       createdAt,
	}
}

func (l ActivityLink) OrganizationSID() uuid.UUID { return l.organizationSID }
func (l ActivityLink) ActivitySID() uuid.UUID     { return l.activitySID }
func (l ActivityLink) CreatedAt() time.Time       { return l.createdAt }
