package persistence_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activitymodule "github.com/iota-uz/org-directory/modules/activity"
	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	activitypersistence "github.com/iota-uz/org-directory/modules/activity/infrastructure/persistence"
	buildingmodule "github.com/iota-uz/org-directory/modules/building"
	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	buildingpersistence "github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	organizationmodule "github.com/iota-uz/org-directory/modules/organization"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/modules/organization/infrastructure/persistence"
	"github.com/iota-uz/org-directory/pkg/itf"
	"github.com/iota-uz/org-directory/pkg/pagination"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

func TestOrganizationRepository(t *testing.T) {
	env := itf.NewTestContext().
		WithModules(buildingmodule.NewModule(), activitymodule.NewModule(), organizationmodule.NewModule()).
		Build(t)
	ctx := env.Ctx

	buildings := buildingpersistence.NewBuildingRepository()
	activities := activitypersistence.NewActivityRepository()
	orgs := persistence.NewOrganizationRepository()
	phones := persistence.NewPhoneRepository()
	addresses := persistence.NewAddressRepository()
	links := persistence.NewActivityLinkRepository()

	moscow, err := buildings.Create(ctx, building.New("г. Москва, ул. Ленина 1", 55.7558, 37.6173))
	require.NoError(t, err)
	food, err := activities.Create(ctx, activity.New("Еда", nil))
	require.NoError(t, err)
	foodSID := food.SID()
	meat, err := activities.Create(ctx, activity.New("Мясная продукция", &foodSID))
	require.NoError(t, err)

	romashka, err := orgs.Create(ctx, organization.New("ООО Ромашка"))
	require.NoError(t, err)
	star, err := orgs.Create(ctx, organization.New("АО 100% Звезда_Север"))
	require.NoError(t, err)

	_, err = phones.Create(ctx, organization.NewPhone(romashka.SID(), "+7-495-123-45-67"))
	require.NoError(t, err)
	_, err = phones.Create(ctx, organization.NewPhone(romashka.SID(), "+7-495-123-45-68"))
	require.NoError(t, err)
	_, err = addresses.Create(ctx, organization.NewAddress(romashka.SID(), moscow.SID(), "Офис 1"))
	require.NoError(t, err)
	_, err = addresses.Create(ctx, organization.NewAddress(star.SID(), moscow.SID(), ""))
	require.NoError(t, err)
	for _, a := range []activity.Activity{meat, food} {
		_, err = links.Create(ctx, organization.NewActivityLink(romashka.SID(), a.SID()))
		require.NoError(t, err)
	}
	_, err = links.Create(ctx, organization.NewActivityLink(star.SID(), meat.SID()))
	require.NoError(t, err)

	t.Run("GetBySID and GetByName", func(t *testing.T) {
		got, err := orgs.GetBySID(ctx, romashka.SID())
		require.NoError(t, err)
		assert.Equal(t, "ООО Ромашка", got.Name())

		got, err = orgs.GetByName(ctx, "АО 100% Звезда_Север")
		require.NoError(t, err)
		assert.Equal(t, star.SID(), got.SID())

		_, err = orgs.GetBySID(ctx, uuid.New())
		require.ErrorIs(t, err, organization.ErrNotFound)
		require.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("GetByActivitySIDs is distinct", func(t *testing.T) {
		got, err := orgs.GetByActivitySIDs(ctx, []uuid.UUID{food.SID(), meat.SID()})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, star.SID(), got[0].SID(), "ordered by name")
		assert.Equal(t, romashka.SID(), got[1].SID())
	})

	t.Run("SearchByName escapes wildcards", func(t *testing.T) {
		got, total, err := orgs.SearchByName(ctx, "0% Звезда_", pagination.Default())
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, star.SID(), got[0].SID())

		got, total, err = orgs.SearchByName(ctx, "%", pagination.Default())
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Len(t, got, 1)

		got, total, err = orgs.SearchByName(ctx, "О", pagination.Params{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, got, 1)
		assert.Equal(t, romashka.SID(), got[0].SID())
	})

	t.Run("Load fetches relations in one round trip", func(t *testing.T) {
		loaded, err := orgs.Load(ctx, []organization.Organization{romashka, star}, organization.FullLoad())
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		full := loaded[0]
		assert.Equal(t, romashka.SID(), full.Organization.SID())
		require.NotNil(t, full.Address)
		assert.Equal(t, "Офис 1", full.Address.Address.Office())
		assert.Equal(t, moscow.Address(), full.Address.Building.Address())
		require.Len(t, full.Activities, 2)
		assert.Equal(t, "Еда", full.Activities[0].Name())
		require.Len(t, full.Phones, 2)
		assert.Equal(t, "+7-495-123-45-67", full.Phones[0].Phone())

		assert.Empty(t, loaded[1].Phones)
		require.NotNil(t, loaded[1].Address)
		assert.Equal(t, "", loaded[1].Address.Address.Office())
	})

	t.Run("Load honours options", func(t *testing.T) {
		loaded, err := orgs.Load(ctx, []organization.Organization{romashka}, organization.LoadOptions{Phones: true})
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Nil(t, loaded[0].Address)
		assert.Empty(t, loaded[0].Activities)
		assert.Len(t, loaded[0].Phones, 2)
	})

	t.Run("sub-repositories find existing rows", func(t *testing.T) {
		_, err := phones.GetByOrganizationAndPhone(ctx, romashka.SID(), "+7-495-123-45-67")
		require.NoError(t, err)
		_, err = phones.GetByOrganizationAndPhone(ctx, romashka.SID(), "+7-000")
		require.ErrorIs(t, err, repo.ErrNotFound)
		_, err = addresses.GetByOrganizationAndBuildingSIDs(ctx, romashka.SID(), moscow.SID())
		require.NoError(t, err)
		_, err = links.GetByOrganizationAndActivitySIDs(ctx, star.SID(), food.SID())
		require.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("building lists its organizations", func(t *testing.T) {
		got, err := buildings.GetOrganizations(ctx, []uuid.UUID{moscow.SID()})
		require.NoError(t, err)
		require.Len(t, got[moscow.SID()], 2)
		assert.Equal(t, "АО 100% Звезда_Север", got[moscow.SID()][0].Name)
	})

	t.Run("Update and Delete", func(t *testing.T) {
		renamed, err := orgs.Update(ctx, star.Rename("АО Полярная Звезда"))
		require.NoError(t, err)
		assert.Equal(t, "АО Полярная Звезда", renamed.Name())

		require.NoError(t, orgs.Delete(ctx, star.SID()))
		_, err = orgs.GetBySID(ctx, star.SID())
		require.ErrorIs(t, err, organization.ErrNotFound)
		require.ErrorIs(t, orgs.Delete(ctx, star.SID()), organization.ErrNotFound)
	})

	// Runs last: the violation aborts the surrounding transaction.
	t.Run("unknown building violates the foreign key", func(t *testing.T) {
		_, err := addresses.Create(ctx, organization.NewAddress(romashka.SID(), uuid.New(), ""))
		require.ErrorIs(t, err, serrors.NotUnique)
	})
}
