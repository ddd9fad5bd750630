package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/repo"
)

const (
	addressByOrganizationQuery = `
		SELECT organization_sid, building_sid, office, created_at
		FROM organization.organization_address
		WHERE organization_sid = $1 AND building_sid = $2`

	addressInsertQuery = `
		INSERT INTO organization.organization_address (organization_sid, building_sid, office, created_at)
		VALUES ($1, $2, $3, $4)`
)

type AddressRepository struct{}

func NewAddressRepository() organization.AddressRepository {
	return &AddressRepository{}
}

func (r *AddressRepository) GetByOrganizationAndBuildingSIDs(ctx context.Context, organizationSID, buildingSID uuid.UUID) (organization.Address, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Address{}, err
	}
	var row OrganizationAddress
	if err := tx.QueryRow(ctx, addressByOrganizationQuery, organizationSID, buildingSID).
		Scan(&row.OrganizationSID, &row.BuildingSID, &row.Office, &row.CreatedAt); err != nil {
		return organization.Address{}, repo.MapError(err)
	}
	return ToDomainAddress(row), nil
}

func (r *AddressRepository) Create(ctx context.Context, a organization.Address) (organization.Address, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Address{}, err
	}
	row := ToDBAddress(a)
	if _, err := tx.Exec(ctx, addressInsertQuery, row.OrganizationSID, row.BuildingSID, row.Office, row.CreatedAt); err != nil {
		return organization.Address{}, repo.MapError(err)
	}
	return a, nil
}
