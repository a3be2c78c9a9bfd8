package postgres

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/geo"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// buildingRepository implements the domain.BuildingRepository interface using GORM.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

// Create persists a new building.
func (repo *buildingRepository) Create(ctx context.Context, building *entity.Building) error {
	buildingM := fromBuildingDomain(building)

	if err := repo.db.WithContext(ctx).Create(buildingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails(pgConstraintName(err))
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("building violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create building")
	}

	building.ID = buildingM.ID
	building.CreatedAt = buildingM.CreatedAt

	return nil
}

// FindByID retrieves a building by its ID.
func (repo *buildingRepository) FindByID(ctx context.Context, id int64) (*entity.Building, error) {
	var buildingM model.BuildingModel
	if err := repo.db.WithContext(ctx).First(&buildingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building by id")
	}

	return toBuildingDomain(&buildingM), nil
}

// FindAll returns every building ordered by ID.
func (repo *buildingRepository) FindAll(ctx context.Context) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&buildingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	return toBuildingsDomain(buildingModels), nil
}

// FindInBox returns buildings inside the box. BETWEEN keeps both edges.
func (repo *buildingRepository) FindInBox(ctx context.Context, box geo.BoundingBox) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLon, box.MaxLon).
		Order("id").
		Find(&buildingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find buildings in box")
	}

	return toBuildingsDomain(buildingModels), nil
}
