package postgres

import (
	"slices"

	"directory/internal/domain/entity"
	"directory/internal/infra/persistence/model"
)

// --- Mapper Functions ---

// toBuildingDomain converts a GORM BuildingModel to a domain Building entity.
func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	if data == nil {
		return nil
	}

	return &entity.Building{
		ID:        data.ID,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
	}
}

// fromBuildingDomain converts a domain Building entity to a GORM BuildingModel.
func fromBuildingDomain(data *entity.Building) *model.BuildingModel {
	if data == nil {
		return nil
	}

	return &model.BuildingModel{
		ID:        data.ID,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
	}
}

func toBuildingsDomain(data []*model.BuildingModel) []*entity.Building {
	buildings := make([]*entity.Building, 0, len(data))
	for _, buildingM := range data {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings
}

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:        data.ID,
		Name:      data.Name,
		Level:     data.Level,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:        data.ID,
		Name:      data.Name,
		Level:     data.Level,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
	}
}

func toActivitiesDomain(data []*model.ActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(data))
	for _, activityM := range data {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities
}

// toOrganizationDomain converts a GORM OrganizationModel, with its preloaded
// associations, to a domain Organization entity.
func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	phones := slices.Clone(data.Phones)
	if phones == nil {
		phones = []string{}
	}

	return &entity.Organization{
		ID:         data.ID,
		Name:       data.Name,
		Phones:     phones,
		BuildingID: data.BuildingID,
		CreatedAt:  data.CreatedAt,
		Building:   toBuildingDomain(data.Building),
		Activities: toActivitiesDomain(data.Activities),
	}
}

// fromOrganizationDomain converts a domain Organization entity to a GORM
// OrganizationModel. Associations are written separately.
func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	phones := slices.Clone(data.Phones)
	if phones == nil {
		phones = []string{}
	}

	return &model.OrganizationModel{
		ID:         data.ID,
		Name:       data.Name,
		Phones:     phones,
		BuildingID: data.BuildingID,
		CreatedAt:  data.CreatedAt,
	}
}

func toOrganizationsDomain(data []*model.OrganizationModel) []*entity.Organization {
	organizations := make([]*entity.Organization, 0, len(data))
	for _, orgM := range data {
		organizations = append(organizations, toOrganizationDomain(orgM))
	}

	return organizations
}
