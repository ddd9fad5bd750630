package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/serrors"
	"github.com/iota-uz/org-directory/pkg/session/sessiontest"
)

type fixture struct {
	ctx     context.Context
	repo    *persistence.InmemBuildingRepository
	service *services.BuildingService
	usecase *services.BuildingUseCase
	bus     eventbus.EventBus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx, _, _ := sessiontest.ScopedContext(t)
	repo := persistence.NewInmemBuildingRepository()
	bus := eventbus.NewEventPublisher(logrus.New())
	svc := services.NewBuildingService(repo, bus)
	return &fixture{
		ctx:     ctx,
		repo:    repo,
		service: svc,
		usecase: services.NewBuildingUseCase(svc),
		bus:     bus,
	}
}

func (f *fixture) create(t *testing.T, address string, lat, lon float64) building.Building {
	t.Helper()
	b, err := f.service.Create(f.ctx, &building.CreateDTO{Address: address, Latitude: lat, Longitude: lon})
	require.NoError(t, err)
	return b
}

func TestBuildingService_CreateIsUniqueByLocation(t *testing.T) {
	f := newFixture(t)
	var published []*building.CreatedEvent
	f.bus.Subscribe(func(e *building.CreatedEvent) { published = append(published, e) })

	first := f.create(t, "г. Москва, ул. Ленина 1", 55.7558, 37.6173)
	require.Len(t, published, 1)
	assert.Equal(t, first.SID(), published[0].Result.SID())

	_, err := f.service.Create(f.ctx, &building.CreateDTO{Address: "г. Москва, ул. Ленина 1", Latitude: 55.7558, Longitude: 37.6173})
	require.ErrorIs(t, err, serrors.NotUnique)

	// Same address at other coordinates is a different building.
	f.create(t, "г. Москва, ул. Ленина 1", 55.0, 37.0)
	assert.Len(t, published, 2)
}

func TestBuildingService_GetBySID(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "г. Омск, ул. Ленина 5", 54.9924, 73.3686)

	got, err := f.service.GetBySID(f.ctx, b.SID())
	require.NoError(t, err)
	assert.Equal(t, b.Address(), got.Address())

	_, err = f.service.GetBySID(f.ctx, uuid.New())
	require.ErrorIs(t, err, building.ErrNotFound)
}

func TestBuildingUseCase_GetOrganizationsBySID(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "г. Уфа, пр. Октября 25", 54.7388, 55.9721)
	empty := f.create(t, "г. Казань, Кремлёвская ул. 3", 55.7903, 49.1347)
	org := building.OrganizationRef{SID: uuid.New(), Name: "ООО БашАвто Ремонт"}
	f.repo.Attach(b.SID(), org)

	got, err := f.usecase.GetOrganizationsBySID(f.ctx, b.SID())
	require.NoError(t, err)
	assert.Equal(t, b.SID(), got.Building.SID())
	assert.Equal(t, []building.OrganizationRef{org}, got.Organizations)

	got, err = f.usecase.GetOrganizationsBySID(f.ctx, empty.SID())
	require.NoError(t, err)
	assert.NotNil(t, got.Organizations)
	assert.Empty(t, got.Organizations)

	_, err = f.usecase.GetOrganizationsBySID(f.ctx, uuid.New())
	require.ErrorIs(t, err, building.ErrNotFound)
}

func TestBuildingUseCase_GetByCoordinates(t *testing.T) {
	f := newFixture(t)
	moscow := f.create(t, "г. Москва, ул. Ленина 1", 55.7558, 37.6173)
	kazan := f.create(t, "г. Казань, Кремлёвская ул. 3", 55.7903, 49.1347)
	f.create(t, "г. Санкт-Петербург, пр. Невский 10", 59.9343, 30.3351)
	f.repo.Attach(kazan.SID(), building.OrganizationRef{SID: uuid.New(), Name: "АО Казань Трак"})

	got, err := f.usecase.GetByCoordinates(f.ctx, building.NewCoordinatesFilter(55, 56, 37, 50))
	require.NoError(t, err)
	require.Len(t, got, 2)
	sids := []uuid.UUID{got[0].Building.SID(), got[1].Building.SID()}
	assert.ElementsMatch(t, []uuid.UUID{moscow.SID(), kazan.SID()}, sids)
	for _, b := range got {
		if b.Building.SID() == kazan.SID() {
			assert.Len(t, b.Organizations, 1)
		} else {
			assert.Empty(t, b.Organizations)
		}
	}

	_, err = f.usecase.GetByCoordinates(f.ctx, building.NewCoordinatesFilter(56, 55, 37, 50))
	require.ErrorIs(t, err, serrors.UnprocessableEntity)
}
