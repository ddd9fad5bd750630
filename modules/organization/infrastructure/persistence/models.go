package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Organization struct {
	SID       uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PhoneNumber struct {
	SID             uuid.UUID
	OrganizationSID uuid.UUID
	Phone           string
	CreatedAt       time.Time
}

type OrganizationAddress struct {
	OrganizationSID uuid.UUID
	BuildingSID     uuid.UUID
	Office          pgtype.Text
	CreatedAt       time.Time
}

type OrganizationActivity struct {
	OrganizationSID uuid.UUID
	ActivitySID     uuid.UUID
	CreatedAt       time.Time
}
