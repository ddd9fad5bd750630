package seed

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/composables"
)

var buildingsForInit = []building.CreateDTO{
	{Address: "г. Москва, ул. Ленина 1", Latitude: 55.7558, Longitude: 37.6173},
	{Address: "г. Санкт-Петербург, пр. Невский 10", Latitude: 59.9343, Longitude: 30.3351},
	{Address: "г. Новосибирск, ул. Красный проспект 20", Latitude: 55.0415, Longitude: 82.9346},
	{Address: "г. Екатеринбург, ул. Малышева 50", Latitude: 56.8389, Longitude: 60.6057},
	{Address: "г. Нижний Новгород, ул. Большая Покровская 15", Latitude: 56.3269, Longitude: 44.0075},
	{Address: "г. Казань, Кремлёвская ул. 3", Latitude: 55.7903, Longitude: 49.1347},
	{Address: "г. Челябинск, пр. Ленина 70", Latitude: 55.1644, Longitude: 61.4368},
	{Address: "г. Омск, ул. Ленина 5", Latitude: 54.9924, Longitude: 73.3686},
	{Address: "г. Ростов-на-Дону, ул. Большая Садовая 40", Latitude: 47.2357, Longitude: 39.7015},
	{Address: "г. Уфа, пр. Октября 25", Latitude: 54.7388, Longitude: 55.9721},
}

func CreateBuildings(ctx context.Context, app application.Application) error {
	svc := app.Service(services.BuildingService{}).(*services.BuildingService)
	logger := composables.UseLogger(ctx)

	for _, entry := range buildingsForInit {
		_, err := svc.GetByAddressAndLocation(ctx, entry.Address, entry.Latitude, entry.Longitude)
		if err == nil {
			logger.Infof("Building by address %s already exists", entry.Address)
			continue
		}
		if !errors.Is(err, building.ErrNotFound) {
			return errors.Wrapf(err, "failed to look up building %s", entry.Address)
		}
		dto := entry
		if _, err := svc.Create(ctx, &dto); err != nil {
			return errors.Wrapf(err, "failed to create building %s", entry.Address)
		}
		logger.Infof("Building by address %s created", entry.Address)
	}
	return nil
}
