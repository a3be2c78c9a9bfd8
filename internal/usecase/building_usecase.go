// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/geo"
)

// CreateBuildingInput defines the data required to register a building.
type CreateBuildingInput struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// BuildingUsecase defines the building operations exposed to the delivery layer.
type BuildingUsecase interface {
	CreateBuilding(ctx context.Context, input *CreateBuildingInput) (*entity.Building, error)
	GetBuilding(ctx context.Context, id int64) (*entity.Building, error)
	ListBuildings(ctx context.Context) ([]*entity.Building, error)

	// FindBuildingsInRadius returns buildings whose great-circle distance to
	// the center is at most radiusKm.
	FindBuildingsInRadius(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Building, error)

	// FindBuildingsInRectangle returns buildings inside the box, edges included.
	FindBuildingsInRectangle(ctx context.Context, box geo.BoundingBox) ([]*entity.Building, error)
}
