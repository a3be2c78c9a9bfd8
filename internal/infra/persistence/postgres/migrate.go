package postgres

import (
	"context"

	"directory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the directory schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.SetupJoinTable(&model.OrganizationModel{}, "Activities", &model.OrganizationActivityModel{}); err != nil {
		return errors.Wrap(err, "failed to set up organization_activity join table")
	}

	err := db.AutoMigrate(
		&model.BuildingModel{},
		&model.ActivityModel{},
		&model.OrganizationModel{},
		&model.OrganizationActivityModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
