package memory

import (
	"context"
	"maps"
	"slices"

	"directory/internal/domain/entity"
	"directory/internal/domain/geo"
	"directory/internal/domain/repository"
)

type buildingRepository struct {
	store *Store
	// tx is the private state of the running transaction, nil outside one.
	tx    *state
}

func (repo *buildingRepository) Create(ctx context.Context, building *entity.Building) error {
	return repo.store.write(ctx, repo.tx, func(st *state) error {
		st.nextBuildingID++
		building.ID = st.nextBuildingID
		building.CreatedAt = repo.store.now()
		st.buildings[building.ID] = cloneBuilding(building)

		return nil
	})
}

func (repo *buildingRepository) FindByID(ctx context.Context, id int64) (*entity.Building, error) {
	var found *entity.Building
	err := repo.store.read(ctx, repo.tx, func(st *state) error {
		building, ok := st.buildings[id]
		if !ok {
			return repository.ErrBuildingNotFound
		}
		found = cloneBuilding(building)

		return nil
	})

	return found, err
}

func (repo *buildingRepository) FindAll(ctx context.Context) ([]*entity.Building, error) {
	return repo.find(ctx, func(*entity.Building) bool { return true })
}

func (repo *buildingRepository) FindInBox(ctx context.Context, box geo.BoundingBox) ([]*entity.Building, error) {
	return repo.find(ctx, func(building *entity.Building) bool {
		return box.Contains(building.Latitude, building.Longitude)
	})
}

func (repo *buildingRepository) find(ctx context.Context, match func(*entity.Building) bool) ([]*entity.Building, error) {
	buildings := []*entity.Building{}
	err := repo.store.read(ctx, repo.tx, func(st *state) error {
		for _, id := range slices.Sorted(maps.Keys(st.buildings)) {
			if building := st.buildings[id]; match(building) {
				buildings = append(buildings, cloneBuilding(building))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildings, nil
}
