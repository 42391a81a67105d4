package models

import "time"

// Board is a unit of delivery owned by exactly one team. ClosedAt is set
// once, on the OPEN to CLOSED transition.
type Board struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description string     `gorm:"size:128" json:"description"`
	TeamID      uint       `gorm:"not null;index" json:"team_id"`
	Status      string     `gorm:"size:12;not null;default:OPEN" json:"status"`
	CreatedAt   time.Time  `json:"creation_time"`
	ClosedAt    *time.Time `json:"end_time,omitempty"`

	// Relationships
	Tasks []Task `gorm:"foreignKey:BoardID" json:"-"`
}
