package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	activitypersistence "github.com/iota-uz/org-directory/modules/activity/infrastructure/persistence"
	buildingpersistence "github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/pagination"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

const (
	organizationFindQuery = `SELECT o.sid, o.name, o.created_at, o.updated_at FROM organization.organization o`

	organizationByNameQuery = organizationFindQuery + ` WHERE o.name = $1 ORDER BY o.created_at, o.sid LIMIT 1`

	organizationByActivitiesQuery = `
		SELECT DISTINCT o.sid, o.name, o.created_at, o.updated_at
		FROM organization.organization o
		JOIN organization.organization_activity oa ON oa.organization_sid = o.sid
		WHERE oa.activity_sid = ANY($1)
		ORDER BY o.name, o.sid`

	organizationSearchQuery = organizationFindQuery + `
		WHERE o.name ILIKE $1
		ORDER BY o.name, o.sid
		LIMIT $2 OFFSET $3`

	organizationSearchCountQuery = `SELECT COUNT(*) FROM organization.organization o WHERE o.name ILIKE $1`

	organizationInsertQuery = `
		INSERT INTO organization.organization (sid, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	organizationUpdateQuery = `UPDATE organization.organization SET name = $1, updated_at = $2 WHERE sid = $3`

	organizationDeleteQuery = `DELETE FROM organization.organization WHERE sid = $1`

	// One address per organization: the earliest one wins.
	loadAddressesQuery = `
		SELECT DISTINCT ON (oa.organization_sid)
			oa.organization_sid, oa.building_sid, oa.office, oa.created_at,
			b.sid, b.address, b.latitude, b.longitude, b.created_at, b.updated_at
		FROM organization.organization_address oa
		JOIN building.building b ON b.sid = oa.building_sid
		WHERE oa.organization_sid = ANY($1)
		ORDER BY oa.organization_sid, oa.created_at, oa.building_sid`

	loadActivitiesQuery = `
		SELECT oa.organization_sid, a.sid, a.name, a.parent_sid, a.created_at, a.updated_at
		FROM organization.organization_activity oa
		JOIN activity.activity a ON a.sid = oa.activity_sid
		WHERE oa.organization_sid = ANY($1)
		ORDER BY a.name, a.sid`

	loadPhonesQuery = `
		SELECT sid, organization_sid, phone, created_at
		FROM organization.phone_number
		WHERE organization_sid = ANY($1)
		ORDER BY created_at, sid`
)

type OrganizationRepository struct{}

func NewOrganizationRepository() organization.Repository {
	return &OrganizationRepository{}
}

func notFound(format string, args ...any) error {
	return serrors.Wrap(organization.ErrNotFound, repo.ErrNotFound).WithCause(format, args...)
}

// likePattern escapes LIKE metacharacters so name is matched literally.
func likePattern(name string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(name) + "%"
}

func (r *OrganizationRepository) GetBySID(ctx context.Context, sid uuid.UUID) (organization.Organization, error) {
	orgs, err := r.queryOrganizations(ctx, organizationFindQuery+" WHERE o.sid = $1", sid)
	if err != nil {
		return organization.Organization{}, err
	}
	if len(orgs) == 0 {
		return organization.Organization{}, notFound("sid %s", sid)
	}
	return orgs[0], nil
}

func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (organization.Organization, error) {
	orgs, err := r.queryOrganizations(ctx, organizationByNameQuery, name)
	if err != nil {
		return organization.Organization{}, err
	}
	if len(orgs) == 0 {
		return organization.Organization{}, notFound("name %q", name)
	}
	return orgs[0], nil
}

func (r *OrganizationRepository) GetByActivitySIDs(ctx context.Context, sids []uuid.UUID) ([]organization.Organization, error) {
	if len(sids) == 0 {
		return []organization.Organization{}, nil
	}
	return r.queryOrganizations(ctx, organizationByActivitiesQuery, sids)
}

func (r *OrganizationRepository) SearchByName(ctx context.Context, name string, params pagination.Params) ([]organization.Organization, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}
	pattern := likePattern(name)
	var total int64
	if err := tx.QueryRow(ctx, organizationSearchCountQuery, pattern).Scan(&total); err != nil {
		return nil, 0, repo.MapError(err)
	}
	orgs, err := r.queryOrganizations(ctx, organizationSearchQuery, pattern, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, o organization.Organization) (organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Organization{}, err
	}
	row := ToDBOrganization(o)
	if _, err := tx.Exec(ctx, organizationInsertQuery, row.SID, row.Name, row.CreatedAt, row.UpdatedAt); err != nil {
		return organization.Organization{}, repo.MapError(err)
	}
	return r.GetBySID(ctx, o.SID())
}

func (r *OrganizationRepository) Update(ctx context.Context, o organization.Organization) (organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Organization{}, err
	}
	tag, err := tx.Exec(ctx, organizationUpdateQuery, o.Name(), o.UpdatedAt(), o.SID())
	if err != nil {
		return organization.Organization{}, repo.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return organization.Organization{}, notFound("sid %s", o.SID())
	}
	return r.GetBySID(ctx, o.SID())
}

// Delete cascades to the organization's phones, address and activity links.
func (r *OrganizationRepository) Delete(ctx context.Context, sid uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, organizationDeleteQuery, sid)
	if err != nil {
		return repo.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("sid %s", sid)
	}
	return nil
}

// Load queues one query per requested relation and sends them as a single
// batch, so the cost does not grow with the number of organizations.
func (r *OrganizationRepository) Load(ctx context.Context, orgs []organization.Organization, opts organization.LoadOptions) ([]organization.Full, error) {
	out := make([]organization.Full, len(orgs))
	index := make(map[uuid.UUID]int, len(orgs))
	sids := make([]uuid.UUID, 0, len(orgs))
	for i, o := range orgs {
		out[i] = organization.Full{
			Organization: o,
			Activities:   []activity.Activity{},
			Phones:       []organization.Phone{},
		}
		index[o.SID()] = i
		sids = append(sids, o.SID())
	}
	if len(orgs) == 0 || !opts.Any() {
		return out, nil
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	batch := &pgx.Batch{}
	if opts.Address {
		batch.Queue(loadAddressesQuery, sids)
	}
	if opts.Activities {
		batch.Queue(loadActivitiesQuery, sids)
	}
	if opts.Phones {
		batch.Queue(loadPhonesQuery, sids)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	if opts.Address {
		if err := scanAddresses(results, out, index); err != nil {
			return nil, err
		}
	}
	if opts.Activities {
		if err := scanActivities(results, out, index); err != nil {
			return nil, err
		}
	}
	if opts.Phones {
		if err := scanPhones(results, out, index); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanAddresses(results pgx.BatchResults, out []organization.Full, index map[uuid.UUID]int) error {
	rows, err := results.Query()
	if err != nil {
		return repo.MapError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var a OrganizationAddress
		var b buildingpersistence.Building
		if err := rows.Scan(
			&a.OrganizationSID, &a.BuildingSID, &a.Office, &a.CreatedAt,
			&b.SID, &b.Address, &b.Latitude, &b.Longitude, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return err
		}
		out[index[a.OrganizationSID]].Address = &organization.LoadedAddress{
			Address:  ToDomainAddress(a),
			Building: buildingpersistence.ToDomainBuilding(b),
		}
	}
	return repo.MapError(rows.Err())
}

func scanActivities(results pgx.BatchResults, out []organization.Full, index map[uuid.UUID]int) error {
	rows, err := results.Query()
	if err != nil {
		return repo.MapError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var orgSID uuid.UUID
		var a activitypersistence.Activity
		if err := rows.Scan(&orgSID, &a.SID, &a.Name, &a.ParentSID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return err
		}
		i := index[orgSID]
		out[i].Activities = append(out[i].Activities, activitypersistence.ToDomainActivity(a))
	}
	return repo.MapError(rows.Err())
}

func scanPhones(results pgx.BatchResults, out []organization.Full, index map[uuid.UUID]int) error {
	rows, err := results.Query()
	if err != nil {
		return repo.MapError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var p PhoneNumber
		if err := rows.Scan(&p.SID, &p.OrganizationSID, &p.Phone, &p.CreatedAt); err != nil {
			return err
		}
		i := index[p.OrganizationSID]
		out[i].Phones = append(out[i].Phones, ToDomainPhone(p))
	}
	return repo.MapError(rows.Err())
}

func (r *OrganizationRepository) queryOrganizations(ctx context.Context, query string, args ...any) ([]organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, repo.MapError(err)
	}
	rowsData, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Organization, error) {
		var o Organization
		err := row.Scan(&o.SID, &o.Name, &o.CreatedAt, &o.UpdatedAt)
		return o, err
	})
	if err != nil {
		return nil, repo.MapError(err)
	}
	orgs := make([]organization.Organization, 0, len(rowsData))
	for _, row := range rowsData {
		orgs = append(orgs, ToDomainOrganization(row))
	}
	return orgs, nil
}
