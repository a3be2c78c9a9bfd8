package postgres

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Omit("Parent").Create(activityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails(pgConstraintName(err))
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrParentActivityNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrMaxDepthExceeded.WithDetails("maximum level is 3")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// FindByID retrieves an activity by its ID.
func (repo *activityRepository) FindByID(ctx context.Context, id int64) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := repo.db.WithContext(ctx).First(&activityM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// FindByIDs returns the existing activities among ids.
func (repo *activityRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Activity, error) {
	if len(ids) == 0 {
		return []*entity.Activity{}, nil
	}

	var activityModels []*model.ActivityModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activities by ids")
	}

	return toActivitiesDomain(activityModels), nil
}

// FindAll returns every activity as a flat list.
func (repo *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return toActivitiesDomain(activityModels), nil
}

// FindChildIDs returns the direct children of any of parentIDs in one query.
func (repo *activityRepository) FindChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	ids := []int64{}
	if len(parentIDs) == 0 {
		return ids, nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("parent_id IN ?", parentIDs).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find child activity ids")
	}

	return ids, nil
}
