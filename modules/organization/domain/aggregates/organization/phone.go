package organization

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Phone struct {
	sid             uuid.UUID
	organizationSID uuid.UUID
	phone           string
	createdAt       time.Time
}

func NewPhone(organizationSID uuid.UUID, phone string) Phone {
	return Phone{
		sid:             uuid.New(),
		organizationSID: organizationSID,
		phone:           strings.TrimSpace(phone),
		createdAt:       time.Now().UTC(),
	}
}

func HydratePhone(sid, organizationSID uuid.UUID, phone string, createdAt time.Time) Phone {
	return Phone{
		sid:             sid,
		organizationSID: organizationSID,
		phone:           phone,
		createdAt:       createdAt,
	}
}

func (p Phone) SID() uuid.UUID             { return p.sid }
func (p Phone) OrganizationSID() uuid.UUID { return p.organizationSID }
func (p Phone) Phone() string              { return p.phone }
func (p Phone) CreatedAt() time.Time       { return p.createdAt }
