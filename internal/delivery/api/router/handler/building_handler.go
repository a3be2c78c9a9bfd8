package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/api/response"
	"directory/internal/delivery/api/validator"
	"directory/internal/domain/geo"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuildingHandlerParams holds dependencies for BuildingHandler, injected by Fx.
type BuildingHandlerParams struct {
	fx.In

	BuildingUC usecase.BuildingUsecase
	Logger     *slog.Logger
}

// BuildingHandler holds dependencies for building-related handlers
type BuildingHandler struct {
	buildingUC usecase.BuildingUsecase
	logger     *slog.Logger
}

// NewBuildingHandler is the constructor for BuildingHandler
func NewBuildingHandler(params BuildingHandlerParams) *BuildingHandler {
	return &BuildingHandler{
		buildingUC: params.BuildingUC,
		logger:     params.Logger,
	}
}

// CreateBuildingRequest represents the request body for registering a building
type CreateBuildingRequest struct {
	Address   string   `json:"address" validate:"required,max=500"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// RadiusSearchRequest represents a circle around a point
type RadiusSearchRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusKm  *float64 `json:"radius_km" validate:"required,gt=0"`
}

// RectangleSearchRequest represents a latitude/longitude box
type RectangleSearchRequest struct {
	MinLat *float64 `json:"min_lat" validate:"required,gte=-90,lte=90"`
	MaxLat *float64 `json:"max_lat" validate:"required,gte=-90,lte=90"`
	MinLon *float64 `json:"min_lon" validate:"required,gte=-180,lte=180"`
	MaxLon *float64 `json:"max_lon" validate:"required,gte=-180,lte=180"`
}

func (r *RectangleSearchRequest) box() geo.BoundingBox {
	return geo.BoundingBox{MinLat: *r.MinLat, MaxLat: *r.MaxLat, MinLon: *r.MinLon, MaxLon: *r.MaxLon}
}

// bindAndValidate binds the request body into req and runs its validate tags.
// On failure the error response has already been written and handled is true.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return true, response.BindingError(c, "INVALID_INPUT", "Malformed request body")
	}

	if validationErr := c.Validate(req); validationErr != nil {
		if fields := validator.FieldErrors(validationErr); fields != nil {
			return true, response.ValidationError(c, fields)
		}

		return true, response.BadRequest(c, "VALIDATION_ERROR", validationErr.Error())
	}

	return false, nil
}

// ListBuildings handles listing every building
func (h *BuildingHandler) ListBuildings(c echo.Context) error {
	buildings, err := h.buildingUC.ListBuildings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBuildingResponses(buildings))
}

// GetBuilding handles retrieving one building
func (h *BuildingHandler) GetBuilding(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid building ID")
	}

	building, err := h.buildingUC.GetBuilding(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBuildingResponse(building))
}

// CreateBuilding handles building registration
func (h *BuildingHandler) CreateBuilding(c echo.Context) error {
	var req CreateBuildingRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	building, err := h.buildingUC.CreateBuilding(c.Request().Context(), &usecase.CreateBuildingInput{
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBuildingResponse(building))
}

// SearchInRadius handles listing buildings within a radius
func (h *BuildingHandler) SearchInRadius(c echo.Context) error {
	var req RadiusSearchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	buildings, err := h.buildingUC.FindBuildingsInRadius(c.Request().Context(), *req.Latitude, *req.Longitude, *req.RadiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBuildingResponses(buildings))
}

// SearchInRectangle handles listing buildings inside a box
func (h *BuildingHandler) SearchInRectangle(c echo.Context) error {
	var req RectangleSearchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	buildings, err := h.buildingUC.FindBuildingsInRectangle(c.Request().Context(), req.box())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBuildingResponses(buildings))
}
