package model

import "time"

// OrganizationModel is the GORM-specific struct for the 'organizations' table.
type OrganizationModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(255);not null;index:ix_organizations_name"`
	Phones     []string  `gorm:"type:json;not null;serializer:json"`
	BuildingID int64     `gorm:"not null;index:ix_organizations_building_id"`
	CreatedAt  time.Time `gorm:"not null"`

	Building   *BuildingModel   `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Activities []*ActivityModel `gorm:"many2many:organization_activity;joinForeignKey:OrganizationID;joinReferences:ActivityID"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// OrganizationActivityModel is the join row between organizations and activities.
type OrganizationActivityModel struct {
	OrganizationID int64 `gorm:"primaryKey;autoIncrement:false"`
	ActivityID     int64 `gorm:"primaryKey;autoIncrement:false;index:ix_organization_activity_activity_id"`

	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Activity     *ActivityModel     `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationActivityModel) TableName() string {
	return "organization_activity"
}
