package modules

import (
	"github.com/iota-uz/org-directory/modules/activity"
	"github.com/iota-uz/org-directory/modules/building"
	"github.com/iota-uz/org-directory/modules/core"
	"github.com/iota-uz/org-directory/modules/organization"
	"github.com/iota-uz/org-directory/pkg/application"
)

// BuiltInModules are ordered so that every module's foreign keys and service
// lookups point at modules registered before it.
var BuiltInModules = []application.Module{
	building.NewModule(),
	activity.NewModule(),
	organization.NewModule(),
	core.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
