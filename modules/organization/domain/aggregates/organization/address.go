package organization

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address places an organization in a building. The pair of sids is its identity.
type Address struct {
	organizationSID uuid.UUID
	buildingSID     uuid.UUID
	office          string
	createdAt       time.Time
}

func NewAddress(organizationSID, buildingSID uuid.UUID, office string) Address {
	return Address{
		organizationSID: organizationSID,
		buildingSID:     buildingSID,
		office:          strings.TrimSpace(office),
		createdAt:       time.Now().UTC(),
	}
}

func HydrateAddress(organizationSID, buildingSID uuid.UUID, office string, createdAt time.Time) Address {
	return Address{
		organizationSID: organizationSID,
		buildingSID:     buildingSID,
		office:          office,
		createdAt:       createdAt,
	}
}

func (a Address) OrganizationSID() uuid.UUID { return a.organizationSID }
func (a Address) BuildingSID() uuid.UUID     { return a.buildingSID }
func (a Address) Office() string             { return a.office }
func (a Address) CreatedAt() time.Time       { return a.createdAt }
