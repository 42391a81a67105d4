package models

import "time"

type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	DisplayName string    `gorm:"size:64;not null" json:"display_name"`
	Description string    `gorm:"size:128" json:"description"`
	CreatedAt   time.Time `json:"creation_time"`

	// Relationships
	Teams []Team `gorm:"many2many:team_members" json:"-"`
	Tasks []Task `gorm:"foreignKey:AssigneeID" json:"-"`
}
