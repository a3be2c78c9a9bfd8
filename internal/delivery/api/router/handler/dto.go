package handler

import (
	"strconv"

	"directory/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BuildingResponse is the JSON shape of a building.
type BuildingResponse struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityResponse is the JSON shape of an activity and its subtree.
type ActivityResponse struct {
	ID       int64               `json:"id"`
	Name     string              `json:"name"`
	Level    int                 `json:"level"`
	ParentID *int64              `json:"parent_id"`
	Children []*ActivityResponse `json:"children"`
}

// OrganizationResponse is the JSON shape of an organization.
type OrganizationResponse struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Phones     []string            `json:"phones"`
	BuildingID int64               `json:"building_id"`
	Building   *BuildingResponse   `json:"building"`
	Activities []*ActivityResponse `json:"activities"`
}

func toBuildingResponse(building *entity.Building) *BuildingResponse {
	if building == nil {
		return nil
	}

	return &BuildingResponse{
		ID:        building.ID,
		Address:   building.Address,
		Latitude:  building.Latitude,
		Longitude: building.Longitude,
	}
}

func toBuildingResponses(buildings []*entity.Building) []*BuildingResponse {
	out := make([]*BuildingResponse, 0, len(buildings))
	for _, building := range buildings {
		out = append(out, toBuildingResponse(building))
	}

	return out
}

func toActivityResponse(activity *entity.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:       activity.ID,
		Name:     activity.Name,
		Level:    activity.Level,
		ParentID: activity.ParentID,
		Children: toActivityResponses(activity.Children),
	}
}

func toActivityResponses(activities []*entity.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		out = append(out, toActivityResponse(activity))
	}

	return out
}

func toOrganizationResponse(org *entity.Organization) *OrganizationResponse {
	phones := org.Phones
	if phones == nil {
		phones = []string{}
	}

	return &OrganizationResponse{
		ID:         org.ID,
		Name:       org.Name,
		Phones:     phones,
		BuildingID: org.BuildingID,
		Building:   toBuildingResponse(org.Building),
		Activities: toActivityResponses(org.Activities),
	}
}

func toOrganizationResponses(orgs []*entity.Organization) []*OrganizationResponse {
	out := make([]*OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, toOrganizationResponse(org))
	}

	return out
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s %q", name, c.Param(name))
	}

	return id, nil
}

// optionalFloatQuery returns nil when the query parameter is absent.
func optionalFloatQuery(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("query parameter %s must be a number", name)
	}

	return &value, nil
}
