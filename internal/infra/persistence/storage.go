// Package persistence selects the repository backend configured by storage.driver.
package persistence

import (
	"log/slog"

	"directory/config"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/memory"
	"directory/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories provided to the container.
type Repositories struct {
	fx.Out

	Buildings     repository.BuildingRepository
	Activities    repository.ActivityRepository
	Organizations repository.OrganizationRepository
	TxManager     repository.TransactionManager
}

// New builds the repositories for the configured driver.
func New(params Params) (Repositories, error) {
	if params.Config.Storage != nil && params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Info("Using in-memory storage")
		store := memory.NewStore()

		return Repositories{
			Buildings:     store.BuildingRepository(),
			Activities:    store.ActivityRepository(),
			Organizations: store.OrganizationRepository(),
			TxManager:     store.TransactionManager(),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		Buildings:     postgres.NewBuildingRepository(db),
		Activities:    postgres.NewActivityRepository(db),
		Organizations: postgres.NewOrganizationRepository(db),
		TxManager:     postgres.NewTransactionManager(db),
	}, nil
}
