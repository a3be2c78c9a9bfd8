package repository

import (
	"context"
	"errors"

	"directory/internal/domain/entity"
)

// ErrOrganizationNotFound is a domain-specific error returned when an organization is not found.
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationRepository defines the persistence operations for organizations.
// Every returned organization carries its building and activities.
type OrganizationRepository interface {
	// Create persists the organization row. Activities are linked separately.
	Create(ctx context.Context, org *entity.Organization) error

	// AttachActivities links the organization to the given activities.
	AttachActivities(ctx context.Context, organizationID int64, activityIDs []int64) error

	// FindByID retrieves a single organization.
	FindByID(ctx context.Context, id int64) (*entity.Organization, error)

	// FindByBuildingIDs returns organizations located in any of the buildings.
	FindByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]*entity.Organization, error)

	// FindByActivityIDs returns organizations linked to any of the activities,
	// each organization at most once.
	FindByActivityIDs(ctx context.Context, activityIDs []int64) ([]*entity.Organization, error)

	// SearchByName returns organizations whose name contains text, ignoring case.
	SearchByName(ctx context.Context, text string) ([]*entity.Organization, error)
}
