package persistence

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
)

func ToDomainActivity(row Activity) activity.Activity {
	var parent *uuid.UUID
	if row.ParentSID.Valid {
		sid := uuid.UUID(row.ParentSID.Bytes)
		parent = &sid
	}
	return activity.Hydrate(row.SID, row.Name, parent, row.CreatedAt, row.UpdatedAt)
}

func ToDBActivity(a activity.Activity) Activity {
	row := Activity{
		SID:       a.SID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
	if parent := a.ParentSID(); parent != nil {
		row.ParentSID = pgtype.UUID{Bytes: *parent, Valid: true}
	}
	return row
}
