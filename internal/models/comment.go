package models

import "time"

// Comment is append-only; there are no edit or delete operations.
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TaskID    uint64    `gorm:"not null;index" json:"taskId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Task *Task `gorm:"foreignKey:TaskID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
