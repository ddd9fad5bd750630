package seed

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/modules/activity/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/composables"
)

type activitySeed struct {
	Name       string
	ParentName string
}

// Parents are listed before their children.
var activitiesForInit = []activitySeed{
	{Name: "Еда"},
	{Name: "Мясная продукция", ParentName: "Еда"},
	{Name: "Копчености", ParentName: "Мясная продукция"},
	{Name: "Молочная продукция", ParentName: "Еда"},
	{Name: "Автомобили"},
	{Name: "Грузовые", ParentName: "Автомобили"},
	{Name: "Легковые", ParentName: "Автомобили"},
	{Name: "Запчасти", ParentName: "Легковые"},
	{Name: "Аксессуары", ParentName: "Легковые"},
	{Name: "Ремонт"},
}

func CreateActivities(ctx context.Context, app application.Application) error {
	svc := app.Service(services.ActivityService{}).(*services.ActivityService)
	logger := composables.UseLogger(ctx)

	for _, entry := range activitiesForInit {
		if _, err := svc.GetByName(ctx, entry.Name); err == nil {
			logger.Infof("Activity %s already exists", entry.Name)
			continue
		} else if !errors.Is(err, activity.ErrNotFound) {
			return errors.Wrapf(err, "failed to look up activity %s", entry.Name)
		}

		dto := &activity.CreateDTO{Name: entry.Name}
		if entry.ParentName != "" {
			parent, err := svc.GetByName(ctx, entry.ParentName)
			if err != nil {
				return errors.Wrapf(err, "failed to resolve parent %s of %s", entry.ParentName, entry.Name)
			}
			sid := parent.SID()
			dto.ParentSID = &sid
		}
		if _, err := svc.Create(ctx, dto); err != nil {
			return errors.Wrapf(err, "failed to create activity %s", entry.Name)
		}
		logger.Infof("Activity %s created", entry.Name)
	}
	return nil
}
