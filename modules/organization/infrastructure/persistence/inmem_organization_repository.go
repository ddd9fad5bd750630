package persistence

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/pagination"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type addressKey struct {
	organizationSID uuid.UUID
	buildingSID     uuid.UUID
}

type activityLinkKey struct {
	organizationSID uuid.UUID
	activitySID     uuid.UUID
}

// InmemRepositories keeps the organization tables in memory. Foreign keys
// to buildings and activities are checked against the given repositories.
type InmemRepositories struct {
	Organizations *InmemOrganizationRepository
	Phones        *InmemPhoneRepository
	Addresses     *InmemAddressRepository
	ActivityLinks *InmemActivityLinkRepository
}

func NewInmemRepositories(buildings building.Repository, activities activity.Repository) *InmemRepositories {
	orgs := repo.NewSafeMap[uuid.UUID, organization.Organization]()
	phones := &InmemPhoneRepository{orgs: orgs, storage: repo.NewSafeMap[uuid.UUID, organization.Phone]()}
	addresses := &InmemAddressRepository{orgs: orgs, buildings: buildings, storage: repo.NewSafeMap[addressKey, organization.Address]()}
	links := &InmemActivityLinkRepository{orgs: orgs, activities: activities, storage: repo.NewSafeMap[activityLinkKey, organization.ActivityLink]()}
	return &InmemRepositories{
		Organizations: &InmemOrganizationRepository{
			storage:    orgs,
			phones:     phones,
			addresses:  addresses,
			links:      links,
			buildings:  buildings,
			activities: activities,
		},
		Phones:        phones,
		Addresses:     addresses,
		ActivityLinks: links,
	}
}

type InmemOrganizationRepository struct {
	storage    *repo.SafeMap[uuid.UUID, organization.Organization]
	phones     *InmemPhoneRepository
	addresses  *InmemAddressRepository
	links      *InmemActivityLinkRepository
	buildings  building.Repository
	activities activity.Repository
}

func byNameThenSID(a, b organization.Organization) int {
	if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	return cmp.Compare(a.SID().String(), b.SID().String())
}

func (r *InmemOrganizationRepository) GetBySID(_ context.Context, sid uuid.UUID) (organization.Organization, error) {
	o, ok := r.storage.Get(sid)
	if !ok {
		return organization.Organization{}, notFound("sid %s", sid)
	}
	return o, nil
}

func (r *InmemOrganizationRepository) GetByName(_ context.Context, name string) (organization.Organization, error) {
	var matches []organization.Organization
	for _, o := range r.storage.Values() {
		if o.Name() == name {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		return organization.Organization{}, notFound("name %q", name)
	}
	return slices.MinFunc(matches, func(a, b organization.Organization) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.SID().String(), b.SID().String())
	}), nil
}

func (r *InmemOrganizationRepository) GetByActivitySIDs(_ context.Context, sids []uuid.UUID) ([]organization.Organization, error) {
	wanted := make(map[uuid.UUID]struct{}, len(sids))
	for _, sid := range sids {
		wanted[sid] = struct{}{}
	}
	tagged := make(map[uuid.UUID]struct{})
	for _, l := range r.links.storage.Values() {
		if _, ok := wanted[l.ActivitySID()]; ok {
			tagged[l.OrganizationSID()] = struct{}{}
		}
	}
	out := []organization.Organization{}
	for _, o := range r.storage.Values() {
		if _, ok := tagged[o.SID()]; ok {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, byNameThenSID)
	return out, nil
}

func (r *InmemOrganizationRepository) SearchByName(_ context.Context, name string, params pagination.Params) ([]organization.Organization, int64, error) {
	needle := strings.ToLower(name)
	matches := []organization.Organization{}
	for _, o := range r.storage.Values() {
		if strings.Contains(strings.ToLower(o.Name()), needle) {
			matches = append(matches, o)
		}
	}
	slices.SortFunc(matches, byNameThenSID)
	total := int64(len(matches))
	start := min(params.Offset, len(matches))
	end := min(start+params.Limit, len(matches))
	return matches[start:end], total, nil
}

func (r *InmemOrganizationRepository) Load(ctx context.Context, orgs []organization.Organization, opts organization.LoadOptions) ([]organization.Full, error) {
	out := make([]organization.Full, 0, len(orgs))
	for _, o := range orgs {
		full := organization.Full{
			Organization: o,
			Activities:   []activity.Activity{},
			Phones:       []organization.Phone{},
		}
		if opts.Address {
			loaded, err := r.loadAddress(ctx, o.SID())
			if err != nil {
				return nil, err
			}
			full.Address = loaded
		}
		if opts.Activities {
			activities, err := r.loadActivities(ctx, o.SID())
			if err != nil {
				return nil, err
			}
			full.Activities = activities
		}
		if opts.Phones {
			for _, p := range r.phones.storage.Values() {
				if p.OrganizationSID() == o.SID() {
					full.Phones = append(full.Phones, p)
				}
			}
			slices.SortFunc(full.Phones, func(a, b organization.Phone) int {
				if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
					return c
				}
				return cmp.Compare(a.SID().String(), b.SID().String())
			})
		}
		out = append(out, full)
	}
	return out, nil
}

func (r *InmemOrganizationRepository) loadAddress(ctx context.Context, orgSID uuid.UUID) (*organization.LoadedAddress, error) {
	var (
		a  organization.Address
		ok bool
	)
	for _, candidate := range r.addresses.storage.Values() {
		if candidate.OrganizationSID() != orgSID {
			continue
		}
		if !ok || candidate.CreatedAt().Before(a.CreatedAt()) {
			a, ok = candidate, true
		}
	}
	if !ok {
		return nil, nil
	}
	b, err := r.buildings.GetBySID(ctx, a.BuildingSID())
	if err != nil {
		return nil, err
	}
	return &organization.LoadedAddress{Address: a, Building: b}, nil
}

func (r *InmemOrganizationRepository) loadActivities(ctx context.Context, orgSID uuid.UUID) ([]activity.Activity, error) {
	out := []activity.Activity{}
	for _, l := range r.links.storage.Values() {
		if l.OrganizationSID() != orgSID {
			continue
		}
		a, err := r.activities.GetBySID(ctx, l.ActivitySID())
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b activity.Activity) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.SID().String(), b.SID().String())
	})
	return out, nil
}

func (r *InmemOrganizationRepository) Create(_ context.Context, o organization.Organization) (organization.Organization, error) {
	if _, exists := r.storage.Get(o.SID()); exists {
		return organization.Organization{}, serrors.New(serrors.NotUnique).WithCause("organization %s already exists", o.SID())
	}
	r.storage.Set(o.SID(), o)
	return o, nil
}

func (r *InmemOrganizationRepository) Update(_ context.Context, o organization.Organization) (organization.Organization, error) {
	stored, ok := r.storage.Get(o.SID())
	if !ok {
		return organization.Organization{}, notFound("sid %s", o.SID())
	}
	updated := organization.Hydrate(stored.SID(), o.Name(), stored.CreatedAt(), o.UpdatedAt())
	r.storage.Set(o.SID(), updated)
	return updated, nil
}

func (r *InmemOrganizationRepository) Delete(_ context.Context, sid uuid.UUID) error {
	if _, ok := r.storage.Get(sid); !ok {
		return notFound("sid %s", sid)
	}
	for _, p := range r.phones.storage.Values() {
		if p.OrganizationSID() == sid {
			r.phones.storage.Delete(p.SID())
		}
	}
	for _, a := range r.addresses.storage.Values() {
		if a.OrganizationSID() == sid {
			r.addresses.storage.Delete(addressKey{sid, a.BuildingSID()})
		}
	}
	for _, l := range r.links.storage.Values() {
		if l.OrganizationSID() == sid {
			r.links.storage.Delete(activityLinkKey{sid, l.ActivitySID()})
		}
	}
	r.storage.Delete(sid)
	return nil
}

func missingReference(format string, args ...any) error {
	return serrors.New(serrors.NotUnique).WithCause(format, args...)
}

type InmemPhoneRepository struct {
	orgs    *repo.SafeMap[uuid.UUID, organization.Organization]
	storage *repo.SafeMap[uuid.UUID, organization.Phone]
}

func (r *InmemPhoneRepository) GetByOrganizationAndPhone(_ context.Context, organizationSID uuid.UUID, phone string) (organization.Phone, error) {
	p, ok := r.storage.Find(func(p organization.Phone) bool {
		return p.OrganizationSID() == organizationSID && p.Phone() == phone
	})
	if !ok {
		return organization.Phone{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *InmemPhoneRepository) Create(_ context.Context, p organization.Phone) (organization.Phone, error) {
	if _, ok := r.orgs.Get(p.OrganizationSID()); !ok {
		return organization.Phone{}, missingReference("organization %s is not present", p.OrganizationSID())
	}
	r.storage.Set(p.SID(), p)
	return p, nil
}

type InmemAddressRepository struct {
	orgs      *repo.SafeMap[uuid.UUID, organization.Organization]
	buildings building.Repository
	storage   *repo.SafeMap[addressKey, organization.Address]
}

func (r *InmemAddressRepository) GetByOrganizationAndBuildingSIDs(_ context.Context, organizationSID, buildingSID uuid.UUID) (organization.Address, error) {
	a, ok := r.storage.Get(addressKey{organizationSID, buildingSID})
	if !ok {
		return organization.Address{}, repo.ErrNotFound
	}
	return a, nil
}

func (r *InmemAddressRepository) Create(ctx context.Context, a organization.Address) (organization.Address, error) {
	if _, ok := r.orgs.Get(a.OrganizationSID()); !ok {
		return organization.Address{}, missingReference("organization %s is not present", a.OrganizationSID())
	}
	if _, err := r.buildings.GetBySID(ctx, a.BuildingSID()); err != nil {
		return organization.Address{}, missingReference("building %s is not present", a.BuildingSID())
	}
	key := addressKey{a.OrganizationSID(), a.BuildingSID()}
	if _, exists := r.storage.Get(key); exists {
		return organization.Address{}, serrors.New(serrors.NotUnique).WithCause("address already exists")
	}
	r.storage.Set(key, a)
	return a, nil
}

type InmemActivityLinkRepository struct {
	orgs       *repo.SafeMap[uuid.UUID, organization.Organization]
	activities activity.Repository
	storage    *repo.SafeMap[activityLinkKey, organization.ActivityLink]
}

func (r *InmemActivityLinkRepository) GetByOrganizationAndActivitySIDs(_ context.Context, organizationSID, activitySID uuid.UUID) (organization.ActivityLink, error) {
	l, ok := r.storage.Get(activityLinkKey{organizationSID, activitySID})
	if !ok {
		return organization.ActivityLink{}, repo.ErrNotFound
	}
	return l, nil
}

func (r *InmemActivityLinkRepository) Create(ctx context.Context, l organization.ActivityLink) (organization.ActivityLink, error) {
	if _, ok := r.orgs.Get(l.OrganizationSID()); !ok {
		return organization.ActivityLink{}, missingReference("organization %s is not present", l.OrganizationSID())
	}
	if _, err := r.activities.GetBySID(ctx, l.ActivitySID()); err != nil {
		return organization.ActivityLink{}, missingReference("activity %s is not present", l.ActivitySID())
	}
	key := activityLinkKey{l.OrganizationSID(), l.ActivitySID()}
	if _, exists := r.storage.Get(key); exists {
		return organization.ActivityLink{}, serrors.New(serrors.NotUnique).WithCause("activity link already exists")
	}
	r.storage.Set(key, l)
	return l, nil
}
