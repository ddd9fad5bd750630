package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

const (
	buildingFindQuery = `SELECT sid, address, latitude, longitude, created_at, updated_at FROM building.building`

	buildingByLocationQuery = buildingFindQuery + `
		WHERE address = $1 AND latitude = $2 AND longitude = $3
		ORDER BY created_at, sid LIMIT 1`

	buildingFilteredQuery = buildingFindQuery + `
		WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4
		ORDER BY address, sid`

	// Addresses are written by the organization module; the join is read only.
	buildingOrganizationsQuery = `
		SELECT oa.building_sid, o.sid, o.name
		FROM organization.organization_address oa
		JOIN organization.organization o ON o.sid = oa.organization_sid
		WHERE oa.building_sid = ANY($1)
		ORDER BY o.name, o.sid`

	buildingInsertQuery = `
		INSERT INTO building.building (sid, address, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

type BuildingRepository struct{}

func NewBuildingRepository() building.Repository {
	return &BuildingRepository{}
}

func notFound(format string, args ...any) error {
	return serrors.Wrap(building.ErrNotFound, repo.ErrNotFound).WithCause(format, args...)
}

func (r *BuildingRepository) GetBySID(ctx context.Context, sid uuid.UUID) (building.Building, error) {
	buildings, err := r.queryBuildings(ctx, buildingFindQuery+" WHERE sid = $1", sid)
	if err != nil {
		return building.Building{}, err
	}
	if len(buildings) == 0 {
		return building.Building{}, notFound("sid %s", sid)
	}
	return buildings[0], nil
}

func (r *BuildingRepository) GetByAddressAndLocation(ctx context.Context, address string, latitude, longitude float64) (building.Building, error) {
	buildings, err := r.queryBuildings(ctx, buildingByLocationQuery, address, latitude, longitude)
	if err != nil {
		return building.Building{}, err
	}
	if len(buildings) == 0 {
		return building.Building{}, notFound("address %q at (%f, %f)", address, latitude, longitude)
	}
	return buildings[0], nil
}

func (r *BuildingRepository) GetFilteredAll(ctx context.Context, filter building.CoordinatesFilter) ([]building.Building, error) {
	return r.queryBuildings(
		ctx,
		buildingFilteredQuery,
		*filter.LatitudeGte,
		*filter.LatitudeLte,
		*filter.LongitudeGte,
		*filter.LongitudeLte,
	)
}

func (r *BuildingRepository) GetOrganizations(ctx context.Context, sids []uuid.UUID) (map[uuid.UUID][]building.OrganizationRef, error) {
	result := make(map[uuid.UUID][]building.OrganizationRef, len(sids))
	if len(sids) == 0 {
		return result, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, buildingOrganizationsQuery, sids)
	if err != nil {
		return nil, repo.MapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var buildingSID uuid.UUID
		var ref building.OrganizationRef
		if err := rows.Scan(&buildingSID, &ref.SID, &ref.Name); err != nil {
			return nil, err
		}
		result[buildingSID] = append(result[buildingSID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.MapError(err)
	}
	return result, nil
}

func (r *BuildingRepository) Create(ctx context.Context, b building.Building) (building.Building, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return building.Building{}, err
	}
	row := ToDBBuilding(b)
	if _, err := tx.Exec(
		ctx,
		buildingInsertQuery,
		row.SID,
		row.Address,
		row.Latitude,
		row.Longitude,
		row.CreatedAt,
		row.UpdatedAt,
	); err != nil {
		return building.Building{}, repo.MapError(err)
	}
	return r.GetBySID(ctx, b.SID())
}

func (r *BuildingRepository) queryBuildings(ctx context.Context, query string, args ...any) ([]building.Building, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, repo.MapError(err)
	}
	rowsData, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Building, error) {
		var b Building
		err := row.Scan(&b.SID, &b.Address, &b.Latitude, &b.Longitude, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	})
	if err != nil {
		return nil, repo.MapError(err)
	}
	buildings := make([]building.Building, 0, len(rowsData))
	for _, row := range rowsData {
		buildings = append(buildings, ToDomainBuilding(row))
	}
	return buildings, nil
}
