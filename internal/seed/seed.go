// Package seed loads the demo directory: five buildings in Moscow and
// Saint Petersburg, two activity trees and seven organizations.
package seed

import (
	"context"

	"directory/internal/usecase"

	"github.com/pkg/errors"
)

// Building keys.
const (
	BuildingLenina   = "lenina"
	BuildingBlukher  = "blukher"
	BuildingMira     = "mira"
	BuildingNevsky   = "nevsky"
	BuildingSadovaya = "sadovaya"
)

type buildingSeed struct {
	key       string
	address   string
	latitude  float64
	longitude float64
}

type activitySeed struct {
	name   string
	parent string
}

type organizationSeed struct {
	name       string
	phones     []string
	building   string
	activities []string
}

var buildings = []buildingSeed{
	{BuildingLenina, "г. Москва, ул. Ленина 1, офис 3", 55.7558, 37.6173},
	{BuildingBlukher, "г. Москва, ул. Блюхера 32/1", 55.7600, 37.6200},
	{BuildingMira, "г. Москва, пр. Мира 15", 55.7700, 37.6300},
	{BuildingNevsky, "г. Санкт-Петербург, Невский пр. 100", 59.9343, 30.3351},
	{BuildingSadovaya, "г. Санкт-Петербург, ул. Садовая 50", 59.9300, 30.3200},
}

// Parents precede their children.
var activities = []activitySeed{
	{name: "Еда"},
	{name: "Мясная продукция", parent: "Еда"},
	{name: "Молочная продукция", parent: "Еда"},
	{name: "Говядина", parent: "Мясная продукция"},
	{name: "Свинина", parent: "Мясная продукция"},
	{name: "Молоко", parent: "Молочная продукция"},
	{name: "Сыры", parent: "Молочная продукция"},
	{name: "Автомобили"},
	{name: "Грузовые", parent: "Автомобили"},
	{name: "Легковые", parent: "Автомобили"},
	{name: "Запчасти", parent: "Автомобили"},
	{name: "Аксессуары", parent: "Запчасти"},
}

var organizations = []organizationSeed{
	{`ООО "Рога и Копыта"`, []string{"2-222-222", "3-333-333", "8-923-666-13-13"}, BuildingLenina, []string{"Мясная продукция", "Молочная продукция"}},
	{`ООО "МясоТорг"`, []string{"8-800-555-35-35"}, BuildingBlukher, []string{"Говядина", "Свинина"}},
	{`ООО "Молочный Рай"`, []string{"8-495-123-45-67", "8-495-123-45-68"}, BuildingLenina, []string{"Молоко", "Сыры"}},
	{`ООО "АвтоМир"`, []string{"8-812-999-88-77"}, BuildingMira, []string{"Легковые", "Грузовые"}},
	{`ООО "Запчасти Плюс"`, []string{"8-812-111-22-33"}, BuildingNevsky, []string{"Запчасти", "Аксессуары"}},
	{`ИП Иванов "Продукты"`, []string{"8-999-888-77-66"}, BuildingSadovaya, []string{"Еда"}},
	{`ООО "ГрузАвто"`, []string{"8-800-100-20-30"}, BuildingMira, []string{"Грузовые"}},
}

// Usecases are the operations the loader goes through.
type Usecases struct {
	Buildings     usecase.BuildingUsecase
	Activities    usecase.ActivityUsecase
	Organizations usecase.OrganizationUsecase
}

// Result maps seed keys to the ids the store assigned.
type Result struct {
	Buildings     map[string]int64 // by building key
	Activities    map[string]int64 // by activity name
	Organizations map[string]int64 // by organization name
}

// Load inserts the demo data through the usecases and reports the new ids.
func Load(ctx context.Context, uc Usecases) (*Result, error) {
	result := &Result{
		Buildings:     make(map[string]int64, len(buildings)),
		Activities:    make(map[string]int64, len(activities)),
		Organizations: make(map[string]int64, len(organizations)),
	}

	for _, b := range buildings {
		building, err := uc.Buildings.CreateBuilding(ctx, &usecase.CreateBuildingInput{
			Address:   b.address,
			Latitude:  b.latitude,
			Longitude: b.longitude,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "seed building %s", b.key)
		}
		result.Buildings[b.key] = building.ID
	}

	for _, a := range activities {
		input := &usecase.CreateActivityInput{Name: a.name}
		if a.parent != "" {
			parentID := result.Activities[a.parent]
			input.ParentID = &parentID
		}

		activity, err := uc.Activities.CreateActivity(ctx, input)
		if err != nil {
			return nil, errors.Wrapf(err, "seed activity %s", a.name)
		}
		result.Activities[a.name] = activity.ID
	}

	for _, o := range organizations {
		activityIDs := make([]int64, 0, len(o.activities))
		for _, name := range o.activities {
			activityIDs = append(activityIDs, result.Activities[name])
		}

		org, err := uc.Organizations.CreateOrganization(ctx, &usecase.CreateOrganizationInput{
			Name:        o.name,
			Phones:      o.phones,
			BuildingID:  result.Buildings[o.building],
			ActivityIDs: activityIDs,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "seed organization %s", o.name)
		}
		result.Organizations[o.name] = org.ID
	}

	return result, nil
}
