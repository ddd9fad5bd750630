package activity

import (
	"embed"
	"io/fs"

	"github.com/iota-uz/org-directory/modules/activity/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/activity/presentation/controllers"
	"github.com/iota-uz/org-directory/modules/activity/seed"
	"github.com/iota-uz/org-directory/modules/activity/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	migrations, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), migrations)

	var cache *services.DescendantCache
	if conf.ActivityCacheEnabled {
		cache = services.NewDescendantCache()
	}
	app.RegisterServices(
		services.NewActivityService(persistence.NewActivityRepository(), app.EventPublisher(), cache),
	)

	app.RegisterControllers(
		controllers.NewActivityAPIController(app, conf.APIPrefix),
	)
	app.RegisterSeedFuncs(seed.CreateActivities)
	return nil
}

func (m *Module) Name() string {
	return "activity"
}
