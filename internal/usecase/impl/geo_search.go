package impl

import (
	"context"
	"fmt"
	"math"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/geo"
	"directory/internal/domain/repository"
	"directory/internal/infra/metrics"

	"github.com/pkg/errors"
)

// radiusSearch finds buildings within radiusKm of the center in two phases:
// a bounding box range query, then an exact haversine check per candidate.
func radiusSearch(ctx context.Context, buildingRepo repository.BuildingRepository, lat, lon, radiusKm float64) ([]*entity.Building, error) {
	box := geo.ComputeBoundingBox(lat, lon, radiusKm)

	candidates, err := buildingRepo.FindInBox(ctx, box)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find buildings in bounding box")
	}

	matches := make([]*entity.Building, 0, len(candidates))
	for _, building := range candidates {
		if geo.IsWithinRadius(lat, lon, building.Latitude, building.Longitude, radiusKm) {
			matches = append(matches, building)
		}
	}

	metrics.ObserveGeoSearch(metrics.GeoModeRadius, len(candidates), len(matches))

	return matches, nil
}

// rectangleSearch is exact by construction and skips the distance check.
func rectangleSearch(ctx context.Context, buildingRepo repository.BuildingRepository, box geo.BoundingBox) ([]*entity.Building, error) {
	buildings, err := buildingRepo.FindInBox(ctx, box)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find buildings in rectangle")
	}

	metrics.ObserveGeoSearch(metrics.GeoModeRectangle, len(buildings), len(buildings))

	return buildings, nil
}

func validateRadiusQuery(lat, lon, radiusKm, maxRadiusKm float64) error {
	if err := geo.ValidateCoordinate(lat, lon); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("radius must be a finite, non-negative number of kilometers")
	}

	if maxRadiusKm > 0 && radiusKm > maxRadiusKm {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("radius must not exceed %v km", maxRadiusKm))
	}

	return nil
}

func validateRectangle(box geo.BoundingBox) error {
	if err := geo.ValidateCoordinate(box.MinLat, box.MinLon); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := geo.ValidateCoordinate(box.MaxLat, box.MaxLon); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if box.MinLat > box.MaxLat || box.MinLon > box.MaxLon {
		return domainerrors.ErrValidationFailed.WithDetails("minimum bounds must not exceed maximum bounds")
	}

	return nil
}

func buildingIDs(buildings []*entity.Building) []int64 {
	ids := make([]int64, 0, len(buildings))
	for _, building := range buildings {
		ids = append(ids, building.ID)
	}

	return ids
}
