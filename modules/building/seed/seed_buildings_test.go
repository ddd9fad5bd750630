package seed_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/building/seed"
	"github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/session/sessiontest"
)

func TestCreateBuildings(t *testing.T) {
	ctx, _, _ := sessiontest.ScopedContext(t)
	logger := logrus.New()
	bus := eventbus.NewEventPublisher(logger)
	repo := persistence.NewInmemBuildingRepository()

	app := application.New(&application.ApplicationOptions{EventBus: bus, Logger: logger})
	app.RegisterServices(services.NewBuildingService(repo, bus))

	require.NoError(t, seed.CreateBuildings(ctx, app))
	require.NoError(t, seed.CreateBuildings(ctx, app), "seeding twice is a no-op")

	all, err := repo.GetFilteredAll(ctx, building.NewCoordinatesFilter(-90, 90, -180, 180))
	require.NoError(t, err)
	assert.Len(t, all, 10)

	omsk, err := repo.GetByAddressAndLocation(ctx, "г. Омск, ул. Ленина 5", 54.9924, 73.3686)
	require.NoError(t, err)
	assert.NotEqual(t, "", omsk.SID().String())
}
