package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/session"
	"github.com/iota-uz/org-directory/pkg/session/sessiontest"
)

type fakeMigrations struct {
	ran, rolledBack bool
	statuses        []application.MigrationStatus
}

func (f *fakeMigrations) RegisterSchema(string, fs.FS) {}

func (f *fakeMigrations) Run(context.Context) error {
	f.ran = true
	return nil
}

func (f *fakeMigrations) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

func (f *fakeMigrations) Status(context.Context) ([]application.MigrationStatus, error) {
	return f.statuses, nil
}

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()

	m := &fakeMigrations{}
	require.NoError(t, runMigrations(ctx, m, MigrateUp, nil))
	assert.True(t, m.ran)
	require.NoError(t, runMigrations(ctx, m, MigrateDown, nil))
	assert.True(t, m.rolledBack)

	var out bytes.Buffer
	require.NoError(t, runMigrations(ctx, &fakeMigrations{}, MigrateStatus, &out))
	assert.JSONEq(t, `[]`, out.String())

	out.Reset()
	m = &fakeMigrations{statuses: []application.MigrationStatus{{Module: "building", Version: 1, Applied: true}}}
	require.NoError(t, runMigrations(ctx, m, MigrateStatus, &out))
	var got []application.MigrationStatus
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "building", got[0].Module)

	require.Error(t, runMigrations(ctx, m, MigrateDirection("sideways"), nil))
}

func newSeedApp(provider *sessiontest.Provider) (application.Application, *session.Registry) {
	registry := session.NewRegistry(provider)
	return application.New(&application.ApplicationOptions{Sessions: registry, Logger: logrus.New()}), registry
}

func TestSeedInScope(t *testing.T) {
	t.Run("commits once and tears down the scope", func(t *testing.T) {
		provider := sessiontest.NewProvider()
		app, registry := newSeedApp(provider)
		var order []string
		record := func(name string) application.SeedFunc {
			return func(context.Context, application.Application) error {
				order = append(order, name)
				return nil
			}
		}
		app.RegisterSeedFuncs(record("buildings"), record("activities"))

		require.NoError(t, seedInScope(context.Background(), app))
		assert.Equal(t, []string{"buildings", "activities"}, order)

		conns := provider.Conns()
		require.Len(t, conns, 1, "every seed shares one session")
		assert.Equal(t, 1, conns[0].Committed())
		assert.True(t, conns[0].Released())
		assert.Zero(t, registry.Active())
	})

	t.Run("a failing seed rolls back and stops the run", func(t *testing.T) {
		provider := sessiontest.NewProvider()
		app, _ := newSeedApp(provider)
		boom := errors.New("boom")
		var after bool
		app.RegisterSeedFuncs(
			func(context.Context, application.Application) error {
				return boom
			},
			func(context.Context, application.Application) error {
				after = true
				return nil
			},
		)

		require.ErrorIs(t, seedInScope(context.Background(), app), boom)
		assert.False(t, after)
		conns := provider.Conns()
		require.Len(t, conns, 1)
		assert.Zero(t, conns[0].Committed())
		assert.Equal(t, 1, conns[0].RolledBack())
	})
}
