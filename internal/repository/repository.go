package repository

import (
	"github.com/teamflow/teamflow-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByIDs returns all users matching the given IDs
	FindByIDs(ids []uint64) ([]models.User, error)

	// List returns all users
	List() ([]models.User, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Status     *models.TaskStatus
	AssignedTo *uint64
	IsDeleted  bool
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID, including soft-deleted tasks
	FindByID(id uint64) (*models.Task, error)

	// FindByIDs returns all tasks matching the given IDs, including
	// soft-deleted tasks
	FindByIDs(ids []uint64) ([]models.Task, error)

	// List retrieves tasks matching the filter, most recently updated first
	List(filter TaskFilter) ([]models.Task, error)

	// ListActive returns all non-deleted tasks
	ListActive() ([]models.Task, error)

	// Update persists changes to a task and stamps its updated-at timestamp
	Update(task *models.Task) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(team *models.Team) error

	// FindByID finds a team by ID
	FindByID(id uint64) (*models.Team, error)

	// FindByIDs returns all teams matching the given IDs
	FindByIDs(ids []uint64) ([]models.Team, error)

	// List returns all teams
	List() ([]models.Team, error)

	// AddMember adds a user to a team
	AddMember(member *models.TeamMember) error

	// ListMembers lists all memberships of a team
	ListMembers(teamID uint64) ([]models.TeamMember, error)

	// ListMembershipsByUserID lists all team memberships of a user
	ListMembershipsByUserID(userID uint64) ([]models.TeamMember, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// ListByTaskID lists a task's comments, oldest first
	ListByTaskID(taskID uint64) ([]models.Comment, error)

	// CountByTaskIDs returns the comment count per task for the given task IDs
	CountByTaskIDs(taskIDs []uint64) (map[uint64]int64, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(notification *models.Notification) error

	// FindByID finds a notification by ID
	FindByID(id uint64) (*models.Notification, error)

	// ListByUserID lists a user's notifications, newest first
	ListByUserID(userID uint64) ([]models.Notification, error)

	// Update persists changes to a notification
	Update(notification *models.Notification) error

	// MarkAllRead flips every unread notification of a user to read
	MarkAllRead(userID uint64) error

	// CountUnread counts a user's unread notifications
	CountUnread(userID uint64) (int64, error)
}

// ActivityRepository defines the interface for activity log access
type ActivityRepository interface {
	// Create appends an activity entry
	Create(activity *models.Activity) error

	// ListRecent lists the most recent activities, newest first
	ListRecent(limit int) ([]models.Activity, error)
}
