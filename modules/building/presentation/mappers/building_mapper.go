package mappers

import (
	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/modules/building/presentation/viewmodels"
)

func BuildingToViewModel(b building.Building) viewmodels.Building {
	return viewmodels.Building{
		SID:       b.SID().String(),
		Address:   b.Address(),
		Latitude:  b.Latitude(),
		Longitude: b.Longitude(),
	}
}

func WithOrganizationsToViewModel(b building.WithOrganizations) viewmodels.BuildingWithOrganizations {
	orgs := make([]viewmodels.Organization, 0, len(b.Organizations))
	for _, o := range b.Organizations {
		orgs = append(orgs, viewmodels.Organization{SID: o.SID.String(), Name: o.Name})
	}
	return viewmodels.BuildingWithOrganizations{
		Building:      BuildingToViewModel(b.Building),
		Organizations: orgs,
	}
}

func WithOrganizationsToViewModels(buildings []building.WithOrganizations) []viewmodels.BuildingWithOrganizations {
	out := make([]viewmodels.BuildingWithOrganizations, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, WithOrganizationsToViewModel(b))
	}
	return out
}
