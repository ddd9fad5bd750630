package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
)

// BuildingUseCase is the entry point the HTTP layer talks to.
type BuildingUseCase struct {
	buildings *BuildingService
}

func NewBuildingUseCase(buildings *BuildingService) *BuildingUseCase {
	return &BuildingUseCase{buildings: buildings}
}

func (u *BuildingUseCase) GetOrganizationsBySID(ctx context.Context, sid uuid.UUID) (building.WithOrganizations, error) {
	return u.buildings.GetWithOrganizations(ctx, sid)
}

func (u *BuildingUseCase) GetByCoordinates(ctx context.Context, filter building.CoordinatesFilter) ([]building.WithOrganizations, error) {
	return u.buildings.GetFilteredAll(ctx, filter)
}
