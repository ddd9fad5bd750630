package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iota-uz/org-directory/pkg/application"
)

type MigrateDirection string

const (
	MigrateUp     MigrateDirection = "up"
	MigrateDown   MigrateDirection = "down"
	MigrateStatus MigrateDirection = "status"
)

func Migrate(ctx context.Context, direction MigrateDirection, out io.Writer, mods ...application.Module) error {
	app, pool, err := newApplication(ctx, mods...)
	if err != nil {
		return err
	}
	defer pool.Close()
	return runMigrations(ctx, app.Migrations(), direction, out)
}

func runMigrations(ctx context.Context, migrations application.MigrationManager, direction MigrateDirection, out io.Writer) error {
	switch direction {
	case MigrateUp:
		return migrations.Run(ctx)
	case MigrateDown:
		return migrations.Rollback(ctx)
	case MigrateStatus:
		statuses, err := migrations.Status(ctx)
		if err != nil {
			return err
		}
		if statuses == nil {
			statuses = []application.MigrationStatus{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	default:
		return fmt.Errorf("unknown migrate direction %q", direction)
	}
}
