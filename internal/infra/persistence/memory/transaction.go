package memory

import (
	"context"

	"directory/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories bound to one transaction's state.
type repositoryFactory struct {
	store *Store
	tx    *state
}

func (f *repositoryFactory) NewBuildingRepository() repository.BuildingRepository {
	return &buildingRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewActivityRepository() repository.ActivityRepository {
	return &activityRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewOrganizationRepository() repository.OrganizationRepository {
	return &organizationRepository{store: f.store, tx: f.tx}
}

// Execute runs fn on a copy of the committed state while holding the store's
// transaction lock. A nil return publishes the copy; an error or a panic
// discards it, ids allocated inside included.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	if err := fn(&repositoryFactory{store: s, tx: working}); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()

	return nil
}
