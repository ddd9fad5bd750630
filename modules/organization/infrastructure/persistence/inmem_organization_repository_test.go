package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activitypersistence "github.com/iota-uz/org-directory/modules/activity/infrastructure/persistence"
	buildingpersistence "github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/modules/organization/infrastructure/persistence"
)

func TestInmemOrganizationRepository_GetByNameEarliest(t *testing.T) {
	ctx := context.Background()
	repos := persistence.NewInmemRepositories(
		buildingpersistence.NewInmemBuildingRepository(),
		activitypersistence.NewInmemActivityRepository(),
	)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	later := organization.Hydrate(uuid.New(), "ООО Ромашка", base.Add(time.Hour), base.Add(time.Hour))
	earliest := organization.Hydrate(uuid.New(), "ООО Ромашка", base, base)
	for _, o := range []organization.Organization{later, earliest} {
		_, err := repos.Organizations.Create(ctx, o)
		require.NoError(t, err)
	}
	for range 10 {
		got, err := repos.Organizations.GetByName(ctx, "ООО Ромашка")
		require.NoError(t, err)
		assert.Equal(t, earliest.SID(), got.SID())
	}
}
