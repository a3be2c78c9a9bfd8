package model

import "time"

// ActivityModel is the GORM-specific struct for the 'activities' table.
type ActivityModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Level     int       `gorm:"not null;check:ck_activities_level,level BETWEEN 1 AND 3"`
	ParentID  *int64    `gorm:"index:ix_activities_parent_id"`
	CreatedAt time.Time `gorm:"not null"`

	Parent *ActivityModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
