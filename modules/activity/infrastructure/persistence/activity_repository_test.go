package persistence_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activitymodule "github.com/iota-uz/org-directory/modules/activity"
	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/modules/activity/infrastructure/persistence"
	"github.com/iota-uz/org-directory/pkg/itf"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

func TestActivityRepository(t *testing.T) {
	env := itf.NewTestContext().WithModules(activitymodule.NewModule()).Build(t)
	ctx := env.Ctx
	r := persistence.NewActivityRepository()

	create := func(t *testing.T, name string, parent *activity.Activity) activity.Activity {
		t.Helper()
		var parentSID *uuid.UUID
		if parent != nil {
			sid := parent.SID()
			parentSID = &sid
		}
		created, err := r.Create(ctx, activity.New(name, parentSID))
		require.NoError(t, err)
		return created
	}

	root := create(t, "R", nil)
	c1 := create(t, "C1", &root)
	c2 := create(t, "C2", &root)
	g1 := create(t, "G1", &c1)

	t.Run("GetByName", func(t *testing.T) {
		got, err := r.GetByName(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, c1.SID(), got.SID())
		require.NotNil(t, got.ParentSID())
		assert.Equal(t, root.SID(), *got.ParentSID())

		_, err = r.GetByName(ctx, "missing")
		require.ErrorIs(t, err, activity.ErrNotFound)
		require.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("descendant closure includes the root", func(t *testing.T) {
		sids, err := r.GetAllDescendantActivitySIDs(ctx, "R")
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{root.SID(), c1.SID(), c2.SID(), g1.SID()}, sids)

		sids, err = r.GetAllDescendantActivitySIDs(ctx, "C2")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{c2.SID()}, sids)

		sids, err = r.GetAllDescendantActivitySIDs(ctx, "nothing")
		require.NoError(t, err)
		assert.Empty(t, sids)
	})

	t.Run("Depth", func(t *testing.T) {
		for want, a := range []activity.Activity{root, c1, g1} {
			depth, err := r.Depth(ctx, a.SID())
			require.NoError(t, err)
			assert.Equal(t, want, depth, a.Name())
		}
		_, err := r.Depth(ctx, uuid.New())
		require.ErrorIs(t, err, activity.ErrNotFound)
	})

	t.Run("Update renames in place", func(t *testing.T) {
		updated, err := r.Update(ctx, c2.Rename("C2 renamed"))
		require.NoError(t, err)
		assert.Equal(t, "C2 renamed", updated.Name())
		require.NotNil(t, updated.ParentSID())
		assert.Equal(t, root.SID(), *updated.ParentSID())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, r.Delete(ctx, g1.SID()))
		_, err := r.GetBySID(ctx, g1.SID())
		require.ErrorIs(t, err, activity.ErrNotFound)
		require.ErrorIs(t, r.Delete(ctx, g1.SID()), activity.ErrNotFound)
	})

	// Runs last: the violation aborts the surrounding transaction.
	t.Run("unknown parent violates the foreign key", func(t *testing.T) {
		missing := uuid.New()
		_, err := r.Create(ctx, activity.New("orphan", &missing))
		require.ErrorIs(t, err, serrors.NotUnique)
	})
}
