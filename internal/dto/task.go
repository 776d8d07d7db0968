package dto

import (
	"time"

	"github.com/teamflow/teamflow-api/internal/models"
)

// TeamSummaryDTO represents a team in API responses
type TeamSummaryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskDTO is the enriched task read model: the persisted task plus its
// assignee and team summaries and the comment count.
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"dueDate"`
	AssignedTo  *uint64             `json:"assignedTo"`
	CreatedBy   uint64              `json:"createdBy"`
	TeamID      *uint64             `json:"teamId"`
	IsDeleted   bool                `json:"isDeleted"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`

	CommentCount int64           `json:"commentCount"`
	Assignee     *UserSummaryDTO `json:"assignee,omitempty"`
	Team         *TeamSummaryDTO `json:"team,omitempty"`
}

// TaskDetailDTO is a TaskDTO with the task's comments included
type TaskDetailDTO struct {
	TaskDTO
	Comments []CommentDTO `json:"comments"`
}

// TaskStatsDTO holds the aggregate counters for the dashboard
type TaskStatsDTO struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Overdue    int `json:"overdue"`
}

// ToTeamSummaryDTO converts a Team model to TeamSummaryDTO
func ToTeamSummaryDTO(team models.Team) TeamSummaryDTO {
	return TeamSummaryDTO{
		ID:   team.ID,
		Name: team.Name,
	}
}

// ToTaskDTO converts a Task model to a bare TaskDTO; relations and the
// comment count are filled in by the enricher.
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		AssignedTo:  task.AssignedTo,
		CreatedBy:   task.CreatedBy,
		TeamID:      task.TeamID,
		IsDeleted:   task.IsDeleted,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
