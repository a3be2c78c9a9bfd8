package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// CreateOrganizationInput defines the data required to register an organization.
type CreateOrganizationInput struct {
	Name        string
	Phones      []string
	BuildingID  int64
	ActivityIDs []int64
}

// GeoSearchInput selects organizations by the location of their building.
//
// Radius mode needs Latitude, Longitude and RadiusKm. Rectangle mode needs
// all four bounds. When both are complete, radius mode wins.
type GeoSearchInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	MinLatitude  *float64
	MaxLatitude  *float64
	MinLongitude *float64
	MaxLongitude *float64
}

// HasRadius reports whether every radius-mode field is set.
func (in *GeoSearchInput) HasRadius() bool {
	return in.Latitude != nil && in.Longitude != nil && in.RadiusKm != nil
}

// HasRectangle reports whether every rectangle-mode field is set.
func (in *GeoSearchInput) HasRectangle() bool {
	return in.MinLatitude != nil && in.MaxLatitude != nil && in.MinLongitude != nil && in.MaxLongitude != nil
}

// OrganizationUsecase defines the organization queries and commands.
type OrganizationUsecase interface {
	CreateOrganization(ctx context.Context, input *CreateOrganizationInput) (*entity.Organization, error)
	GetOrganization(ctx context.Context, id int64) (*entity.Organization, error)
	GetOrganizationsByBuilding(ctx context.Context, buildingID int64) ([]*entity.Organization, error)

	// GetOrganizationsByActivity lists organizations practicing the activity,
	// and with includeDescendants also those practicing any activity below it.
	GetOrganizationsByActivity(ctx context.Context, activityID int64, includeDescendants bool) ([]*entity.Organization, error)

	// SearchOrganizationsByName matches a case-insensitive substring of the name.
	SearchOrganizationsByName(ctx context.Context, text string) ([]*entity.Organization, error)

	GetOrganizationsInGeoArea(ctx context.Context, input *GeoSearchInput) ([]*entity.Organization, error)

	// GenerateOrganizationCard renders the organization's contact card as a PNG QR code.
	GenerateOrganizationCard(ctx context.Context, id int64) ([]byte, error)
}
