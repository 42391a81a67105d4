package models

import "time"

// Team groups users under a single admin. The admin is always a member of
// its own team; membership lives in the team_members join table.
type Team struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:128" json:"description"`
	AdminID     uint      `gorm:"not null" json:"admin"`
	CreatedAt   time.Time `json:"creation_time"`

	// Relationships
	Members []User  `gorm:"many2many:team_members" json:"-"`
	Boards  []Board `gorm:"foreignKey:TeamID" json:"-"`
}
