package model

import "time"

// BuildingModel is the GORM-specific struct for the 'buildings' table.
type BuildingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Address   string    `gorm:"type:varchar(500);not null"`
	Latitude  float64   `gorm:"type:double precision;not null;index:ix_buildings_coordinates,priority:1"`
	Longitude float64   `gorm:"type:double precision;not null;index:ix_buildings_coordinates,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}
