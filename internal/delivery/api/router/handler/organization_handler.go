package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/response"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pngContentType = "image/png"

// OrganizationHandlerParams holds dependencies for OrganizationHandler, injected by Fx.
type OrganizationHandlerParams struct {
	fx.In

	OrganizationUC usecase.OrganizationUsecase
	Logger         *slog.Logger
}

// OrganizationHandler holds dependencies for organization-related handlers
type OrganizationHandler struct {
	orgUC  usecase.OrganizationUsecase
	logger *slog.Logger
}

// NewOrganizationHandler is the constructor for OrganizationHandler
func NewOrganizationHandler(params OrganizationHandlerParams) *OrganizationHandler {
	return &OrganizationHandler{
		orgUC:  params.OrganizationUC,
		logger: params.Logger,
	}
}

// CreateOrganizationRequest represents the request body for registering an organization
type CreateOrganizationRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Phones      []string `json:"phones" validate:"dive,required,max=50"`
	BuildingID  int64    `json:"building_id" validate:"required,gt=0"`
	ActivityIDs []int64  `json:"activity_ids" validate:"dive,gt=0"`
}

// GetOrganization handles retrieving one organization
func (h *OrganizationHandler) GetOrganization(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid organization ID")
	}

	org, err := h.orgUC.GetOrganization(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponse(org))
}

// GetOrganizationCard handles rendering the organization's contact card as a QR code
func (h *OrganizationHandler) GetOrganizationCard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid organization ID")
	}

	png, err := h.orgUC.GenerateOrganizationCard(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, pngContentType, png)
}

// GetByBuilding handles listing organizations located in a building
func (h *OrganizationHandler) GetByBuilding(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid building ID")
	}

	orgs, err := h.orgUC.GetOrganizationsByBuilding(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}

// GetByActivity handles listing organizations by activity.
// include_children defaults to true.
func (h *OrganizationHandler) GetByActivity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	includeChildren := true
	if raw := c.QueryParam("include_children"); raw != "" {
		includeChildren, err = strconv.ParseBool(raw)
		if err != nil {
			return response.ValidationError(c, map[string]string{"include_children": "must be a boolean"})
		}
	}

	orgs, err := h.orgUC.GetOrganizationsByActivity(c.Request().Context(), id, includeChildren)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}

// SearchByName handles the case-insensitive name search
func (h *OrganizationHandler) SearchByName(c echo.Context) error {
	name := c.QueryParam("name")
	if strings.TrimSpace(name) == "" {
		return response.ValidationError(c, map[string]string{"name": "is required"})
	}

	orgs, err := h.orgUC.SearchOrganizationsByName(c.Request().Context(), name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}

// SearchInRadius handles listing organizations whose building lies within a radius
func (h *OrganizationHandler) SearchInRadius(c echo.Context) error {
	var req RadiusSearchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	return h.searchGeo(c, &usecase.GeoSearchInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
	})
}

// SearchInRectangle handles listing organizations whose building lies inside a box
func (h *OrganizationHandler) SearchInRectangle(c echo.Context) error {
	var req RectangleSearchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	return h.searchGeo(c, &usecase.GeoSearchInput{
		MinLatitude:  req.MinLat,
		MaxLatitude:  req.MaxLat,
		MinLongitude: req.MinLon,
		MaxLongitude: req.MaxLon,
	})
}

// SearchGeo handles the query-string geo search; radius mode wins when
// both a center with radius and a full rectangle are supplied.
func (h *OrganizationHandler) SearchGeo(c echo.Context) error {
	input := &usecase.GeoSearchInput{}
	params := []struct {
		name string
		dest **float64
	}{
		{"lat", &input.Latitude},
		{"lon", &input.Longitude},
		{"radius_km", &input.RadiusKm},
		{"min_lat", &input.MinLatitude},
		{"max_lat", &input.MaxLatitude},
		{"min_lon", &input.MinLongitude},
		{"max_lon", &input.MaxLongitude},
	}

	invalid := map[string]string{}
	for _, param := range params {
		value, err := optionalFloatQuery(c, param.name)
		if err != nil {
			invalid[param.name] = "must be a number"
			continue
		}
		*param.dest = value
	}
	if len(invalid) > 0 {
		return response.ValidationError(c, invalid)
	}

	return h.searchGeo(c, input)
}

func (h *OrganizationHandler) searchGeo(c echo.Context, input *usecase.GeoSearchInput) error {
	orgs, err := h.orgUC.GetOrganizationsInGeoArea(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrganizationResponses(orgs))
}

// CreateOrganization handles organization registration
func (h *OrganizationHandler) CreateOrganization(c echo.Context) error {
	var req CreateOrganizationRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	org, err := h.orgUC.CreateOrganization(c.Request().Context(), &usecase.CreateOrganizationInput{
		Name:        req.Name,
		Phones:      req.Phones,
		BuildingID:  req.BuildingID,
		ActivityIDs: req.ActivityIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if subject, ok := middleware.GetSubject(c); ok {
		h.logger.Info("Organization created by token holder", slog.String("subject", subject), slog.Int64("organizationID", org.ID))
	}

	return response.Success(c, http.StatusCreated, toOrganizationResponse(org))
}
