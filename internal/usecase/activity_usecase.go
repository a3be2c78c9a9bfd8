package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// CreateActivityInput defines the data required to add an activity.
// A nil ParentID creates a root activity.
type CreateActivityInput struct {
	Name     string
	ParentID *int64
}

// ActivityUsecase defines the operations on the activity taxonomy.
type ActivityUsecase interface {
	CreateActivity(ctx context.Context, input *CreateActivityInput) (*entity.Activity, error)

	// GetActivity returns the activity with its nested children.
	GetActivity(ctx context.Context, id int64) (*entity.Activity, error)

	// ListActivityTree returns the root activities with their nested children.
	ListActivityTree(ctx context.Context) ([]*entity.Activity, error)

	// DescendantIDs returns activityID together with every activity below it.
	// The seed id is included even when no such activity exists.
	DescendantIDs(ctx context.Context, activityID int64) ([]int64, error)
}
