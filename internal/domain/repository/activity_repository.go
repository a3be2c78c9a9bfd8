package repository

import (
	"context"
	"errors"

	"directory/internal/domain/entity"
)

// ErrActivityNotFound is a domain-specific error returned when an activity is not found.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository defines the persistence operations for the activity taxonomy.
type ActivityRepository interface {
	// Create persists a new activity. Level and ParentID must already be resolved.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves a single activity without its children.
	FindByID(ctx context.Context, id int64) (*entity.Activity, error)

	// FindByIDs returns the activities that exist among ids, ordered by ID.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Activity, error)

	// FindAll returns the flat list of activities ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Activity, error)

	// FindChildIDs returns the IDs of direct children of any of parentIDs.
	FindChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
}
