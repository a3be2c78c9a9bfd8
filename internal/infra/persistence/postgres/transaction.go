// Package postgres stores the directory in PostgreSQL through gorm.
package postgres

import (
	"context"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory builds repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewBuildingRepository() repository.BuildingRepository {
	return NewBuildingRepository(f.tx)
}

func (f *gormRepositoryFactory) NewActivityRepository() repository.ActivityRepository {
	return NewActivityRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrganizationRepository() repository.OrganizationRepository {
	return NewOrganizationRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. An error from fn rolls back and is
// returned as is; a panic rolls back and is re-raised; otherwise it commits.
// Begin, commit and rollback failures surface as ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return txFailure("begin", tx.Error)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		tx.Rollback()
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		finished = true
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, txFailure("rollback", rbErr))
		}

		return err
	}

	finished = true
	if err := tx.Commit().Error; err != nil {
		return txFailure("commit", err)
	}

	return nil
}

func txFailure(step string, cause error) error {
	return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(step+": "+cause.Error()), step)
}
