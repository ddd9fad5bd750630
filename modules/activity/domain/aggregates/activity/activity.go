package activity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxDepth is the deepest level a parent may sit at; roots are at depth 0,
// so the tree holds at most MaxDepth+1 levels.
const MaxDepth = 3

type Activity struct {
	sid       uuid.UUID
	name      string
	parentSID *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func New(name string, parentSID *uuid.UUID) Activity {
	now := time.Now().UTC()
	return Activity{
		sid:       uuid.New(),
		name:      strings.TrimSpace(name),
		parentSID: copySID(parentSID),
		createdAt: now,
		updatedAt: now,
	}
}

func Hydrate(
	sid uuid.UUID,
	name string,
	parentSID *uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) Activity {
	return Activity{
		sid:       sid,
		name:      name,
		parentSID: copySID(parentSID),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a Activity) SID() uuid.UUID        { return a.sid }
func (a Activity) Name() string          { return a.name }
func (a Activity) ParentSID() *uuid.UUID { return copySID(a.parentSID) }
func (a Activity) IsRoot() bool          { return a.parentSID == nil }
func (a Activity) CreatedAt() time.Time  { return a.createdAt }
func (a Activity) UpdatedAt() time.Time  { return a.updatedAt }
func (a Activity) IsZero() bool          { return a.sid == uuid.Nil }

// Rename is the only mutation an activity supports; its place in the tree is fixed.
func (a Activity) Rename(name string) Activity {
	a.name = strings.TrimSpace(name)
	a.updatedAt = time.Now().UTC()
	return a
}

func copySID(sid *uuid.UUID) *uuid.UUID {
	if sid == nil {
		return nil
	}
	v := *sid
	return &v
}
