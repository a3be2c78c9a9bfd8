package memory

import (
	"context"
	"maps"
	"slices"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
)

type activityRepository struct {
	store *Store
	// tx is the private state of the running transaction, nil outside one.
	tx    *state
}

// Create enforces the same parent reference and level range as the SQL schema.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return repo.store.write(ctx, repo.tx, func(st *state) error {
		if activity.ParentID != nil {
			if _, ok := st.activities[*activity.ParentID]; !ok {
				return domainerrors.ErrParentActivityNotFound
			}
		}
		if activity.Level < entity.RootActivityLevel || activity.Level > entity.MaxActivityLevel {
			return domainerrors.ErrMaxDepthExceeded.WithDetails("maximum level is 3")
		}

		st.nextActivityID++
		activity.ID = st.nextActivityID
		activity.CreatedAt = repo.store.now()
		st.activities[activity.ID] = cloneActivity(activity)

		return nil
	})
}

func (repo *activityRepository) FindByID(ctx context.Context, id int64) (*entity.Activity, error) {
	var found *entity.Activity
	err := repo.store.read(ctx, repo.tx, func(st *state) error {
		activity, ok := st.activities[id]
		if !ok {
			return repository.ErrActivityNotFound
		}
		found = cloneActivity(activity)

		return nil
	})

	return found, err
}

func (repo *activityRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Activity, error) {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	return repo.find(ctx, func(activity *entity.Activity) bool {
		_, ok := wanted[activity.ID]
		return ok
	})
}

func (repo *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	return repo.find(ctx, func(*entity.Activity) bool { return true })
}

func (repo *activityRepository) FindChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	parents := make(map[int64]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = struct{}{}
	}

	children, err := repo.find(ctx, func(activity *entity.Activity) bool {
		if activity.ParentID == nil {
			return false
		}
		_, ok := parents[*activity.ParentID]

		return ok
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.ID)
	}

	return ids, nil
}

func (repo *activityRepository) find(ctx context.Context, match func(*entity.Activity) bool) ([]*entity.Activity, error) {
	activities := []*entity.Activity{}
	err := repo.store.read(ctx, repo.tx, func(st *state) error {
		for _, id := range slices.Sorted(maps.Keys(st.activities)) {
			if activity := st.activities[id]; match(activity) {
				activities = append(activities, cloneActivity(activity))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return activities, nil
}
