package building

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Building struct {
	sid       uuid.UUID
	address   string
	latitude  float64
	longitude float64
	createdAt time.Time
	updatedAt time.Time
}

func New(address string, latitude, longitude float64) Building {
	now := time.Now().UTC()
	return Building{
		sid:       uuid.New(),
		address:   strings.TrimSpace(address),
		latitude:  latitude,
		longitude: longitude,
		createdAt: now,
		updatedAt: now,
	}
}

func Hydrate(
	sid uuid.UUID,
	address string,
	latitude float64,
	longitude float64,
	createdAt time.Time,
	updatedAt time.Time,
) Building {
	return Building{
		sid:       sid,
		address:   address,
		latitude:  latitude,
		longitude: longitude,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b Building) SID() uuid.UUID       { return b.sid }
func (b Building) Address() string      { return b.address }
func (b Building) Latitude() float64    { return b.latitude }
func (b Building) Longitude() float64   { return b.longitude }
func (b Building) CreatedAt() time.Time { return b.createdAt }
func (b Building) UpdatedAt() time.Time { return b.updatedAt }

// SameLocation reports whether b sits at exactly the given address and coordinates.
func (b Building) SameLocation(address string, latitude, longitude float64) bool {
	return b.address == strings.TrimSpace(address) && b.latitude == latitude && b.longitude == longitude
}

// OrganizationRef is the short form of an organization housed in a building.
type OrganizationRef struct {
	SID  uuid.UUID
	Name string
}

type WithOrganizations struct {
	Building      Building
	Organizations []OrganizationRef
}
