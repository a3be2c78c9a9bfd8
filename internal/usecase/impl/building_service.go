// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/geo"
	"directory/internal/domain/repository"
	logs "directory/internal/infra/log"
	"directory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type buildingService struct {
	buildingRepo repository.BuildingRepository
	maxRadiusKm  float64
	logger       *slog.Logger
}

// BuildingServiceParams holds dependencies for BuildingService, injected by Fx.
type BuildingServiceParams struct {
	fx.In

	BuildingRepo repository.BuildingRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBuildingService creates a new building service instance
func NewBuildingService(params BuildingServiceParams) usecase.BuildingUsecase {
	return &buildingService{
		buildingRepo: params.BuildingRepo,
		maxRadiusKm:  maxRadiusKm(params.Config),
		logger:       params.Logger,
	}
}

func maxRadiusKm(cfg *config.Config) float64 {
	if cfg == nil || cfg.Geo == nil {
		return 0
	}

	return cfg.Geo.MaxRadiusKm
}

func (srv *buildingService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// CreateBuilding validates and stores a new building.
func (srv *buildingService) CreateBuilding(ctx context.Context, input *usecase.CreateBuildingInput) (*entity.Building, error) {
	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}
	if utf8.RuneCountInString(address) > entity.MaxAddressLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is too long")
	}
	if err := geo.ValidateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	building := &entity.Building{
		Address:   address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := srv.buildingRepo.Create(ctx, building); err != nil {
		srv.log(ctx).Error("Failed to create building", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create building")
	}

	srv.log(ctx).Info("Building created", slog.Int64("buildingID", building.ID))

	return building, nil
}

// GetBuilding retrieves a building by id.
func (srv *buildingService) GetBuilding(ctx context.Context, id int64) (*entity.Building, error) {
	building, err := srv.buildingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building")
	}

	return building, nil
}

// ListBuildings returns every building.
func (srv *buildingService) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	buildings, err := srv.buildingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	return buildings, nil
}

// FindBuildingsInRadius returns buildings at most radiusKm from the center.
func (srv *buildingService) FindBuildingsInRadius(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Building, error) {
	if err := validateRadiusQuery(lat, lon, radiusKm, srv.maxRadiusKm); err != nil {
		return nil, err
	}

	return radiusSearch(ctx, srv.buildingRepo, lat, lon, radiusKm)
}

// FindBuildingsInRectangle returns buildings inside the box.
func (srv *buildingService) FindBuildingsInRectangle(ctx context.Context, box geo.BoundingBox) ([]*entity.Building, error) {
	if err := validateRectangle(box); err != nil {
		return nil, err
	}

	return rectangleSearch(ctx, srv.buildingRepo, box)
}
