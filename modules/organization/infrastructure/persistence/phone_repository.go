package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/repo"
)

const (
	phoneByOrganizationQuery = `
		SELECT sid, organization_sid, phone, created_at
		FROM organization.phone_number
		WHERE organization_sid = $1 AND phone = $2
		LIMIT 1`

	phoneInsertQuery = `
		INSERT INTO organization.phone_number (sid, organization_sid, phone, created_at)
		VALUES ($1, $2, $3, $4)`
)

type PhoneRepository struct{}

func NewPhoneRepository() organization.PhoneRepository {
	return &PhoneRepository{}
}

func (r *PhoneRepository) GetByOrganizationAndPhone(ctx context.Context, organizationSID uuid.UUID, phone string) (organization.Phone, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Phone{}, err
	}
	var row PhoneNumber
	if err := tx.QueryRow(ctx, phoneByOrganizationQuery, organizationSID, phone).
		Scan(&row.SID, &row.OrganizationSID, &row.Phone, &row.CreatedAt); err != nil {
		return organization.Phone{}, repo.MapError(err)
	}
	return ToDomainPhone(row), nil
}

func (r *PhoneRepository) Create(ctx context.Context, p organization.Phone) (organization.Phone, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Phone{}, err
	}
	row := ToDBPhone(p)
	if _, err := tx.Exec(ctx, phoneInsertQuery, row.SID, row.OrganizationSID, row.Phone, row.CreatedAt); err != nil {
		return organization.Phone{}, repo.MapError(err)
	}
	return p, nil
}
