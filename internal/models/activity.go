package models

import "time"

type ActivityAction string

const (
	ActivityCreated   ActivityAction = "created"
	ActivityCompleted ActivityAction = "completed"
	ActivityCommented ActivityAction = "commented"
	ActivityAssigned  ActivityAction = "assigned"
	ActivityUpdated   ActivityAction = "updated"
)

// EntityTypeTask is the only entity type the activity log records today.
const EntityTypeTask = "task"

// Activity is an append-only record of who did what to which entity.
// EntityType/EntityID form a loose reference, not a foreign key.
type Activity struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	UserID     uint64         `gorm:"not null" json:"userId"`
	Action     ActivityAction `gorm:"type:varchar(20);not null" json:"action"`
	EntityType string         `gorm:"type:varchar(20);not null" json:"entityType"`
	EntityID   uint64         `gorm:"not null" json:"entityId"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
