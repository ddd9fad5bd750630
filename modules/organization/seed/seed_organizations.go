package seed

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	activityservices "github.com/iota-uz/org-directory/modules/activity/services"
	buildingservices "github.com/iota-uz/org-directory/modules/building/services"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/modules/organization/services"
	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/composables"
)

type organizationSeed struct {
	Name         string
	Phones       []string
	Address      string
	Office       string
	Latitude     float64
	Longitude    float64
	ActivityName string
}

var organizationsForInit = []organizationSeed{
	{
		Name:         "ООО Ромашка",
		Phones:       []string{"+7-495-123-45-67"},
		Address:      "г. Москва, ул. Ленина 1",
		Office:       "Офис 1",
		Latitude:     55.7558,
		Longitude:    37.6173,
		ActivityName: "Еда",
	},
	{
		Name:         "АО Северная Звезда",
		Phones:       []string{"+7-812-234-56-78", "+7-812-234-56-79"},
		Address:      "г. Санкт-Петербург, пр. Невский 10",
		Office:       "Офис 2",
		Latitude:     59.9343,
		Longitude:    30.3351,
		ActivityName: "Мясная продукция",
	},
	{
		Name:         "ООО Сибирь Продукт",
		Address:      "г. Новосибирск, ул. Красный проспект 20",
		Office:       "Офис 3",
		Latitude:     55.0415,
		Longitude:    82.9346,
		ActivityName: "Копчености",
	},
	{
		Name:         "ЗАО Урал Лакто",
		Phones:       []string{"+7-343-111-2222", "+7-343-333-4444", "+7-343-555-6666"},
		Address:      "г. Екатеринбург, ул. Малышева 50",
		Office:       "Офис 4",
		Latitude:     56.8389,
		Longitude:    60.6057,
		ActivityName: "Молочная продукция",
	},
	{
		Name:         "ООО Нижегородский Автокомплекс",
		Phones:       []string{"+7-831-777-88-99"},
		Address:      "г. Нижний Новгород, ул. Большая Покровская 15",
		Office:       "Офис 5",
		Latitude:     56.3269,
		Longitude:    44.0075,
		ActivityName: "Автомобили",
	},
	{
		Name:         "АО Казань Трак",
		Phones:       []string{"+7-843-123-45-67"},
		Address:      "г. Казань, Кремлёвская ул. 3",
		Office:       "Офис 6",
		Latitude:     55.7903,
		Longitude:    49.1347,
		ActivityName: "Грузовые",
	},
	{
		Name:         "ООО ЧелябСтрой",
		Phones:       []string{"+7-351-222-33-44"},
		Address:      "г. Челябинск, пр. Ленина 70",
		Office:       "Офис 7",
		Latitude:     55.1644,
		Longitude:    61.4368,
		ActivityName: "Легковые",
	},
	{
		Name:         "ООО Омск Автоэксперт",
		Phones:       []string{"+7-381-555-66-77", "+7-381-888-99-00"},
		Address:      "г. Омск, ул. Ленина 5",
		Office:       "Офис 8",
		Latitude:     54.9924,
		Longitude:    73.3686,
		ActivityName: "Запчасти",
	},
	{
		Name:         "ЗАО Ростов Комплект",
		Phones:       []string{"+7-863-111-2222"},
		Address:      "г. Ростов-на-Дону, ул. Большая Садовая 40",
		Office:       "Офис 9",
		Latitude:     47.2357,
		Longitude:    39.7015,
		ActivityName: "Аксессуары",
	},
	{
		Name:         "ООО БашАвто Ремонт",
		Phones:       []string{"+7-347-123-4567", "+7-347-234-5678", "+7-347-345-6789", "+7-347-456-7890"},
		Address:      "г. Уфа, пр. Октября 25",
		Office:       "Офис 10",
		Latitude:     54.7388,
		Longitude:    55.9721,
		ActivityName: "Ремонт",
	},
}

// CreateOrganizations expects buildings and activities to be seeded already.
func CreateOrganizations(ctx context.Context, app application.Application) error {
	usecase := app.Service(services.OrganizationUseCase{}).(*services.OrganizationUseCase)
	buildings := app.Service(buildingservices.BuildingService{}).(*buildingservices.BuildingService)
	activities := app.Service(activityservices.ActivityService{}).(*activityservices.ActivityService)
	logger := composables.UseLogger(ctx)

	for _, entry := range organizationsForInit {
		b, err := buildings.GetByAddressAndLocation(ctx, entry.Address, entry.Latitude, entry.Longitude)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve building %s for %s", entry.Address, entry.Name)
		}
		a, err := activities.GetByName(ctx, entry.ActivityName)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve activity %s for %s", entry.ActivityName, entry.Name)
		}
		buildingSID := b.SID()
		_, created, err := usecase.Register(ctx, &organization.CreateDTO{
			Name:         entry.Name,
			PhoneNumbers: append([]string(nil), entry.Phones...),
			BuildingSID:  &buildingSID,
			Office:       entry.Office,
			ActivitySIDs: []uuid.UUID{a.SID()},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to register organization %s", entry.Name)
		}
		if created {
			logger.Infof("Organization %s created", entry.Name)
		} else {
			logger.Infof("Organization %s already exists", entry.Name)
		}
	}
	return nil
}
