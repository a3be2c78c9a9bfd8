package postgres

import (
	"context"
	"strings"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// organizationRepository implements the domain.OrganizationRepository interface using GORM.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// Create persists the organization row without touching associations.
func (repo *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orgM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails(pgConstraintName(err))
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBuildingNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required organization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organization")
	}

	org.ID = orgM.ID
	org.CreatedAt = orgM.CreatedAt

	return nil
}

// AttachActivities inserts join rows, ignoring links that already exist.
func (repo *organizationRepository) AttachActivities(ctx context.Context, organizationID int64, activityIDs []int64) error {
	if len(activityIDs) == 0 {
		return nil
	}

	links := make([]*model.OrganizationActivityModel, 0, len(activityIDs))
	for _, activityID := range activityIDs {
		links = append(links, &model.OrganizationActivityModel{
			OrganizationID: organizationID,
			ActivityID:     activityID,
		})
	}

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferencedActivityNotFound.WithDetails(pgConstraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach activities")
	}

	return nil
}

// FindByID retrieves an organization with its building and activities.
func (repo *organizationRepository) FindByID(ctx context.Context, id int64) (*entity.Organization, error) {
	var orgM model.OrganizationModel
	if err := repo.preloaded(ctx).First(&orgM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by id")
	}

	return toOrganizationDomain(&orgM), nil
}

// FindByBuildingIDs returns organizations located in any of the buildings.
func (repo *organizationRepository) FindByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]*entity.Organization, error) {
	if len(buildingIDs) == 0 {
		return []*entity.Organization{}, nil
	}

	var orgModels []*model.OrganizationModel
	err := repo.preloaded(ctx).
		Where("building_id IN ?", buildingIDs).
		Order("id").
		Find(&orgModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by buildings")
	}

	return toOrganizationsDomain(orgModels), nil
}

// FindByActivityIDs returns organizations linked to any of the activities.
// Membership is resolved by a DISTINCT subquery over the join table, since
// the json phones column rules out DISTINCT on the organization row itself.
func (repo *organizationRepository) FindByActivityIDs(ctx context.Context, activityIDs []int64) ([]*entity.Organization, error) {
	if len(activityIDs) == 0 {
		return []*entity.Organization{}, nil
	}

	members := repo.db.WithContext(ctx).
		Model(&model.OrganizationActivityModel{}).
		Distinct("organization_id").
		Where("activity_id IN ?", activityIDs)

	var orgModels []*model.OrganizationModel
	err := repo.preloaded(ctx).
		Where("id IN (?)", members).
		Order("id").
		Find(&orgModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by activities")
	}

	return toOrganizationsDomain(orgModels), nil
}

// SearchByName matches text as a literal, case-insensitive substring.
func (repo *organizationRepository) SearchByName(ctx context.Context, text string) ([]*entity.Organization, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"

	var orgModels []*model.OrganizationModel
	err := repo.preloaded(ctx).
		Where("name ILIKE ?", pattern).
		Order("id").
		Find(&orgModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search organizations by name")
	}

	return toOrganizationsDomain(orgModels), nil
}

func (repo *organizationRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Building").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.id")
		})
}
