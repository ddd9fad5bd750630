package persistence

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// InmemActivityRepository mirrors the Postgres repository's constraints,
// including the parent foreign key, without a database.
type InmemActivityRepository struct {
	storage *repo.SafeMap[uuid.UUID, activity.Activity]
}

func NewInmemActivityRepository() *InmemActivityRepository {
	return &InmemActivityRepository{
		storage: repo.NewSafeMap[uuid.UUID, activity.Activity](),
	}
}

func (r *InmemActivityRepository) GetBySID(_ context.Context, sid uuid.UUID) (activity.Activity, error) {
	a, ok := r.storage.Get(sid)
	if !ok {
		return activity.Activity{}, notFound("sid %s", sid)
	}
	return a, nil
}

// GetByName picks the earliest of several activities sharing name, like the
// Postgres query.
func (r *InmemActivityRepository) GetByName(_ context.Context, name string) (activity.Activity, error) {
	var matches []activity.Activity
	for _, a := range r.storage.Values() {
		if a.Name() == name {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return activity.Activity{}, notFound("name %q", name)
	}
	return slices.MinFunc(matches, func(a, b activity.Activity) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.SID().String(), b.SID().String())
	}), nil
}

func (r *InmemActivityRepository) GetAll(_ context.Context) ([]activity.Activity, error) {
	return r.storage.Values(), nil
}

func (r *InmemActivityRepository) GetAllDescendantActivitySIDs(ctx context.Context, activityName string) ([]uuid.UUID, error) {
	root, err := r.GetByName(ctx, activityName)
	if err != nil {
		return []uuid.UUID{}, nil
	}
	return activity.DescendantClosure(root.SID(), activity.ChildrenIndex(r.storage.Values())), nil
}

func (r *InmemActivityRepository) Depth(_ context.Context, sid uuid.UUID) (int, error) {
	current, ok := r.storage.Get(sid)
	if !ok {
		return 0, notFound("sid %s", sid)
	}
	depth := 0
	for !current.IsRoot() && depth < maxWalk {
		parent, ok := r.storage.Get(*current.ParentSID())
		if !ok {
			break
		}
		current = parent
		depth++
	}
	return depth, nil
}

func (r *InmemActivityRepository) Create(_ context.Context, a activity.Activity) (activity.Activity, error) {
	if _, exists := r.storage.Get(a.SID()); exists {
		return activity.Activity{}, serrors.New(serrors.NotUnique).WithCause("activity %s already exists", a.SID())
	}
	if parent := a.ParentSID(); parent != nil {
		if _, ok := r.storage.Get(*parent); !ok {
			return activity.Activity{}, serrors.New(serrors.NotUnique).WithCause("parent %s is not present", *parent)
		}
	}
	r.storage.Set(a.SID(), a)
	return a, nil
}

func (r *InmemActivityRepository) Update(_ context.Context, a activity.Activity) (activity.Activity, error) {
	stored, ok := r.storage.Get(a.SID())
	if !ok {
		return activity.Activity{}, notFound("sid %s", a.SID())
	}
	updated := activity.Hydrate(stored.SID(), a.Name(), stored.ParentSID(), stored.CreatedAt(), a.UpdatedAt())
	r.storage.Set(a.SID(), updated)
	return updated, nil
}

func (r *InmemActivityRepository) Delete(_ context.Context, sid uuid.UUID) error {
	if _, ok := r.storage.Get(sid); !ok {
		return notFound("sid %s", sid)
	}
	if _, hasChild := r.storage.Find(func(a activity.Activity) bool {
		parent := a.ParentSID()
		return parent != nil && *parent == sid
	}); hasChild {
		return serrors.New(serrors.NotUnique).WithCause("activity %s still has children", sid)
	}
	r.storage.Delete(sid)
	return nil
}
