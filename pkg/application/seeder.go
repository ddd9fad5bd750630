package application

import (
	"context"
	"reflect"
	"runtime"

	"github.com/sirupsen/logrus"
)

func NewSeeder(logger *logrus.Logger) Seeder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &seeder{logger: logger}
}

type seeder struct {
	logger    *logrus.Logger
	seedFuncs []SeedFunc
}

// Seed runs the registered funcs in order, all on the scope carried by ctx.
// The first failure stops the run.
func (s *seeder) Seed(ctx context.Context, app Application) error {
	for _, seedFunc := range s.seedFuncs {
		name := runtime.FuncForPC(reflect.ValueOf(seedFunc).Pointer()).Name()
		s.logger.Infof("Seeding %s", name)
		if err := seedFunc(ctx, app); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) Register(seedFuncs ...SeedFunc) {
	s.seedFuncs = append(s.seedFuncs, seedFuncs...)
}
