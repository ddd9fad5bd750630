package building

import (
	"embed"
	"io/fs"

	"github.com/iota-uz/org-directory/modules/building/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/building/presentation/controllers"
	"github.com/iota-uz/org-directory/modules/building/seed"
	"github.com/iota-uz/org-directory/modules/building/services"
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
	migrations, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), migrations)

	buildingService := services.NewBuildingService(persistence.NewBuildingRepository(), app.EventPublisher())
	app.RegisterServices(
		buildingService,
		services.NewBuildingUseCase(buildingService),
	)

	app.RegisterControllers(
		controllers.NewBuildingAPIController(app, configuration.Use().APIPrefix),
	)
	app.RegisterSeedFuncs(seed.CreateBuildings)
	return nil
}

func (m *Module) Name() string {
	return "building"
}
