package organization

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	sid       uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string) Organization {
	now := time.Now().UTC()
	return Organization{
		sid:       uuid.New(),
		name:      strings.TrimSpace(name),
		createdAt: now,
		updatedAt: now,
	}
}

func Hydrate(sid uuid.UUID, name string, createdAt, updatedAt time.Time) Organization {
	return Organization{
		sid:       sid,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o Organization) SID() uuid.UUID       { return o.sid }
func (o Organization) Name() string         { return o.name }
func (o Organization) CreatedAt() time.Time { return o.createdAt }
func (o Organization) UpdatedAt() time.Time { return o.updatedAt }

func (o Organization) Rename(name string) Organization {
	o.name = strings.TrimSpace(name)
	o.updatedAt = time.Now().UTC()
	return o
}
