package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/org-directory/modules"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/configuration"
	"github.com/iota-uz/org-directory/pkg/eventbus"
)

func connectDB(ctx context.Context, conf *configuration.Configuration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

// newApplication connects to the database and registers mods. The caller
// closes the returned pool.
func newApplication(ctx context.Context, mods ...application.Module) (application.Application, *pgxpool.Pool, error) {
	conf := configuration.Use()
	pool, err := connectDB(ctx, conf)
	if err != nil {
		return nil, nil, err
	}
	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(conf.Logger()),
		Logger:   conf.Logger(),
	})
	if err := modules.Load(app, mods...); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to load modules: %w", err)
	}
	return app, pool, nil
}
