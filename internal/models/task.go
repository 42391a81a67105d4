package models

import "time"

// Task belongs to exactly one board and is assigned to a user who was a
// member of the board's team at creation time.
type Task struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:64;uniqueIndex;not null" json:"title"`
	Description string    `gorm:"size:128" json:"description"`
	BoardID     uint      `gorm:"not null;index" json:"board_id"`
	AssigneeID  uint      `gorm:"not null" json:"user_id"`
	Status      string    `gorm:"size:12;not null;default:OPEN" json:"status"`
	CreatedAt   time.Time `json:"creation_time"`
}
