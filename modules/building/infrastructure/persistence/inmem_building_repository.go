package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type InmemBuildingRepository struct {
	storage *repo.SafeMap[uuid.UUID, building.Building]

	mu        sync.RWMutex
	occupants map[uuid.UUID][]building.OrganizationRef
}

func NewInmemBuildingRepository() *InmemBuildingRepository {
	return &InmemBuildingRepository{
		storage:   repo.NewSafeMap[uuid.UUID, building.Building](),
		occupants: make(map[uuid.UUID][]building.OrganizationRef),
	}
}

// Attach records an organization as housed in the building, standing in for
// the organization module's address table.
func (r *InmemBuildingRepository) Attach(buildingSID uuid.UUID, org building.OrganizationRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.occupants[buildingSID] = append(r.occupants[buildingSID], org)
}

func (r *InmemBuildingRepository) GetBySID(_ context.Context, sid uuid.UUID) (building.Building, error) {
	b, ok := r.storage.Get(sid)
	if !ok {
		return building.Building{}, notFound("sid %s", sid)
	}
	return b, nil
}

func (r *InmemBuildingRepository) GetByAddressAndLocation(_ context.Context, address string, latitude, longitude float64) (building.Building, error) {
	b, ok := r.storage.Find(func(b building.Building) bool {
		return b.SameLocation(address, latitude, longitude)
	})
	if !ok {
		return building.Building{}, notFound("address %q at (%f, %f)", address, latitude, longitude)
	}
	return b, nil
}

func (r *InmemBuildingRepository) GetFilteredAll(_ context.Context, filter building.CoordinatesFilter) ([]building.Building, error) {
	out := []building.Building{}
	for _, b := range r.storage.Values() {
		if filter.Contains(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *InmemBuildingRepository) GetOrganizations(_ context.Context, sids []uuid.UUID) (map[uuid.UUID][]building.OrganizationRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[uuid.UUID][]building.OrganizationRef, len(sids))
	for _, sid := range sids {
		if orgs, ok := r.occupants[sid]; ok {
			out[sid] = append([]building.OrganizationRef(nil), orgs...)
		}
	}
	return out, nil
}

func (r *InmemBuildingRepository) Create(_ context.Context, b building.Building) (building.Building, error) {
	if _, exists := r.storage.Get(b.SID()); exists {
		return building.Building{}, serrors.New(serrors.NotUnique).WithCause("building %s already exists", b.SID())
	}
	r.storage.Set(b.SID(), b)
	return b, nil
}
