package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task uses an explicit isDeleted flag instead of gorm.DeletedAt so that
// soft-deleted tasks remain addressable by id for restore.
type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	AssignedTo  *uint64      `json:"assignedTo"`
	CreatedBy   uint64       `gorm:"not null" json:"createdBy"`
	TeamID      *uint64      `json:"teamId"`
	IsDeleted   bool         `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Relations
	Creator  *User     `gorm:"foreignKey:CreatedBy" json:"-"`
	Assignee *User     `gorm:"foreignKey:AssignedTo" json:"-"`
	Team     *Team     `gorm:"foreignKey:TeamID" json:"-"`
	Comments []Comment `gorm:"foreignKey:TaskID" json:"-"`
}
