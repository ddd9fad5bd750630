package core

import (
	"github.com/iota-uz/org-directory/modules/core/presentation/controllers"
	"github.com/iota-uz/org-directory/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(
		controllers.NewHealthController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
