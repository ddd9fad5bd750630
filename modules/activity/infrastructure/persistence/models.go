package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Activity struct {
	SID       uuid.UUID
	Name      string
	ParentSID pgtype.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
