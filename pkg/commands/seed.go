package commands

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/configuration"
)

// SeedDatabase runs every registered seed func in one session scope and one
// transaction, so a failing seed leaves the database untouched.
func SeedDatabase(ctx context.Context, mods ...application.Module) error {
	app, pool, err := newApplication(ctx, mods...)
	if err != nil {
		return err
	}
	defer pool.Close()
	return seedInScope(composables.WithLogger(ctx, configuration.Use().Logger().WithField("component", "seed")), app)
}

func seedInScope(ctx context.Context, app application.Application) error {
	registry := app.Sessions()
	scope := registry.Open()
	defer registry.Close(scope)

	logger := composables.UseLogger(ctx).WithField("scope-id", scope.ID().String())
	ctx = composables.WithLogger(composables.WithScope(ctx, scope), logger)

	if err := composables.InTx(ctx, func(txCtx context.Context) error {
		return app.Seeder().Seed(txCtx, app)
	}); err != nil {
		return errors.Wrap(err, "seed")
	}
	logger.Info("seeding finished")
	return nil
}
