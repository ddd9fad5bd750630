package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/configuration"
	"github.com/iota-uz/org-directory/pkg/dbwait"
)

// Ping waits for the database. Zero attempts or an empty interval fall back
// to the configured values.
func Ping(ctx context.Context, attempts int, interval string) error {
	conf := configuration.Use()
	if attempts <= 0 {
		attempts = conf.Database.WaitAttempts
	}
	wait := conf.Database.WaitInterval
	if interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid --interval: %w", err)
		}
		wait = parsed
	}

	pool, err := connectDB(ctx, conf)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx = composables.WithLogger(ctx, conf.Logger().WithField("component", "dbwait"))
	return dbwait.Wait(ctx, pool, attempts, wait)
}
