package organization

import (
	"embed"
	"io/fs"

	activityservices "github.com/iota-uz/org-directory/modules/activity/services"
	buildingservices "github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/modules/organization/infrastructure/persistence"
	"github.com/iota-uz/org-directory/modules/organization/presentation/controllers"
	"github.com/iota-uz/org-directory/modules/organization/seed"
	"github.com/iota-uz/org-directory/modules/organization/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

// Module depends on the building and activity modules, which must be
// registered first.
type Module struct{}

func (m *Module) Register(app application.Application) error {
	migrations, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), migrations)

	organizationService := services.NewOrganizationService(
		persistence.NewOrganizationRepository(),
		persistence.NewPhoneRepository(),
		persistence.NewAddressRepository(),
		persistence.NewActivityLinkRepository(),
		app.EventPublisher(),
	)
	app.RegisterServices(
		organizationService,
		services.NewOrganizationUseCase(
			app.Service(activityservices.ActivityService{}).(*activityservices.ActivityService),
			app.Service(buildingservices.BuildingService{}).(*buildingservices.BuildingService),
			organizationService,
		),
	)

	app.RegisterControllers(
		controllers.NewOrganizationAPIController(app, configuration.Use().APIPrefix),
	)
	app.RegisterSeedFuncs(seed.CreateOrganizations)
	return nil
}

func (m *Module) Name() string {
	return "organization"
}
