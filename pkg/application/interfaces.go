package application

import (
	"context"
	"io/fs"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/session"
)

type Controller interface {
	Register(r *mux.Router)
	Key() string
}

type Module interface {
	Name() string
	Register(app Application) error
}

// SeedFunc populates reference data. It runs inside a session scope and must
// be safe to repeat.
type SeedFunc func(ctx context.Context, app Application) error

type Seeder interface {
	Seed(ctx context.Context, app Application) error
	Register(seedFuncs ...SeedFunc)
}

type MigrationManager interface {
	RegisterSchema(module string, migrations fs.FS)
	Run(ctx context.Context) error
	Rollback(ctx context.Context) error
	Status(ctx context.Context) ([]MigrationStatus, error)
}

// Application is the composition root shared by modules, servers and commands.
type Application interface {
	DB() *pgxpool.Pool
	Sessions() *session.Registry
	EventPublisher() eventbus.EventBus
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	Migrations() MigrationManager
	Seeder() Seeder
	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	RegisterSeedFuncs(seedFuncs ...SeedFunc)
	Service(service interface{}) interface{}
	Services() map[reflect.Type]interface{}
}
