// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"directory/internal/domain/entity"
	"directory/internal/domain/geo"
)

// ErrBuildingNotFound is a domain-specific error returned when a building is not found.
var ErrBuildingNotFound = errors.New("building not found")

// BuildingRepository defines the persistence operations for buildings.
type BuildingRepository interface {
	// Create persists a new building and fills in its ID and CreatedAt.
	Create(ctx context.Context, building *entity.Building) error

	// FindByID retrieves a single building by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Building, error)

	// FindAll returns every building ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Building, error)

	// FindInBox returns buildings whose coordinates fall inside the box, edges included.
	FindInBox(ctx context.Context, box geo.BoundingBox) ([]*entity.Building, error)
}
