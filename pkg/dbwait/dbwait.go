// Package dbwait blocks until the database answers a ping.
package dbwait

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/org-directory/pkg/composables"
)

var ErrNoAttempts = errors.New("dbwait: attempts must be positive")

type Pinger interface {
	Ping(ctx context.Context) error
}

// Wait pings p up to attempts times, interval apart, and returns nil on the
// first success. Otherwise it returns the last ping error, or ctx's error
// when ctx ends first.
func Wait(ctx context.Context, p Pinger, attempts int, interval time.Duration) error {
	if attempts <= 0 {
		return ErrNoAttempts
	}
	logger := composables.UseLogger(ctx)

	attempt := 0
	ping := func() error {
		attempt++
		return p.Ping(ctx)
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(attempts-1)),
		ctx,
	)
	err := backoff.RetryNotify(ping, policy, func(err error, next time.Duration) {
		logger.WithFields(logrus.Fields{
			"attempt": attempt,
			"of":      attempts,
			"retry":   next,
		}).WithError(err).Warn("database is not ready")
	})
	if err != nil {
		logger.WithError(err).Errorf("database did not answer after %d attempts", attempt)
		return err
	}
	logger.WithField("attempt", attempt).Info("database is ready")
	return nil
}
