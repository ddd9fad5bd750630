package persistence

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
)

func ToDomainOrganization(row Organization) organization.Organization {
	return organization.Hydrate(row.SID, row.Name, row.CreatedAt, row.UpdatedAt)
}

func ToDBOrganization(o organization.Organization) Organization {
	return Organization{
		SID:       o.SID(),
		Name:      o.Name(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func ToDomainPhone(row PhoneNumber) organization.Phone {
	return organization.HydratePhone(row.SID, row.OrganizationSID, row.Phone, row.CreatedAt)
}

func ToDBPhone(p organization.Phone) PhoneNumber {
	return PhoneNumber{
		SID:             p.SID(),
		OrganizationSID: p.OrganizationSID(),
		Phone:           p.Phone(),
		CreatedAt:       p.CreatedAt(),
	}
}

func ToDomainAddress(row OrganizationAddress) organization.Address {
	return organization.HydrateAddress(row.OrganizationSID, row.BuildingSID, row.Office.String, row.CreatedAt)
}

func ToDBAddress(a organization.Address) OrganizationAddress {
	return OrganizationAddress{
		OrganizationSID: a.OrganizationSID(),
		BuildingSID:     a.BuildingSID(),
		Office:          pgtype.Text{String: a.Office(), Valid: a.Office() != ""},
		CreatedAt:       a.CreatedAt(),
	}
}

func ToDomainActivityLink(row OrganizationActivity) organization.ActivityLink {
	return organization.HydrateActivityLink(row.OrganizationSID, row.ActivitySID, row.CreatedAt)
}

func ToDBActivityLink(l organization.ActivityLink) OrganizationActivity {
	return OrganizationActivity{
		OrganizationSID: l.OrganizationSID(),
		ActivitySID:     l.ActivitySID(),
		CreatedAt:       l.CreatedAt(),
	}
}
