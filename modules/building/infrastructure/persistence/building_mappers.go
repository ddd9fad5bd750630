package persistence

import (
	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
)

func ToDomainBuilding(row Building) building.Building {
	return building.Hydrate(row.SID, row.Address, row.Latitude, row.Longitude, row.CreatedAt, row.UpdatedAt)
}

func ToDBBuilding(b building.Building) Building {
	return Building{
		SID:       b.SID(),
		Address:   b.Address(),
		Latitude:  b.Latitude(),
		Longitude: b.Longitude(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}
