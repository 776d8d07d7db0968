package models

import "time"

type NotificationType string

const (
	NotificationComment       NotificationType = "comment"
	NotificationTaskCompleted NotificationType = "task_completed"
	NotificationTaskOverdue   NotificationType = "task_overdue"
	NotificationTeamUpdate    NotificationType = "team_update"
	NotificationTaskCreated   NotificationType = "task_created"
	NotificationTaskAssigned  NotificationType = "task_assigned"
)

type Notification struct {
	ID        uint64           `gorm:"primarykey" json:"id"`
	UserID    uint64           `gorm:"not null;index" json:"userId"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	RelatedID *uint64          `json:"relatedId"`
	IsRead    bool             `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
