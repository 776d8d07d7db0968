package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamflow/teamflow-api/internal/dto"
	"github.com/teamflow/teamflow-api/internal/models"
	"github.com/teamflow/teamflow-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// TaskService handles the task lifecycle and its derived notification and
// activity writes. Side effects are sequential and not transactional with
// the task write: a failure after the task mutation stops the sequence and
// surfaces the error.
type TaskService struct {
	taskRepo         repository.TaskRepository
	userRepo         repository.UserRepository
	commentRepo      repository.CommentRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	enricher         *Enricher
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
	enricher *Enricher,
) *TaskService {
	return &TaskService{
		taskRepo:         taskRepo,
		userRepo:         userRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		enricher:         enricher,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
	AssignedTo  *uint64
	CreatedBy   uint64
	TeamID      *uint64
}

// UpdateTaskInput represents a partial task update. Pointer fields are only
// applied when non-nil; the Clear flags null out their optional columns.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Status        *models.TaskStatus
	Priority      *models.TaskPriority
	DueDate       *time.Time
	ClearDueDate  bool
	AssignedTo    *uint64
	ClearAssignee bool
	TeamID        *uint64
	ClearTeam     bool
}

// CreateCommentInput represents input for commenting on a task
type CreateCommentInput struct {
	UserID  uint64
	Content string
}

// ListTasks returns enriched tasks matching the filter
func (s *TaskService) ListTasks(filter repository.TaskFilter) ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return s.enricher.EnrichTasks(tasks)
}

// GetTask returns an enriched task with its comments. Soft-deleted tasks
// still resolve so the trash view can show them.
func (s *TaskService) GetTask(taskID uint64) (*dto.TaskDetailDTO, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enricher.EnrichTask(*task)
	if err != nil {
		return nil, err
	}

	comments, err := s.ListComments(taskID)
	if err != nil {
		return nil, err
	}

	return &dto.TaskDetailDTO{TaskDTO: *enriched, Comments: comments}, nil
}

// CreateTask creates a task, logs the creation activity and notifies the
// assignee when the task was assigned to someone other than the creator.
func (s *TaskService) CreateTask(input CreateTaskInput) (*dto.TaskDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   input.CreatedBy,
		TeamID:      input.TeamID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.recordActivity(input.CreatedBy, models.ActivityCreated, task.ID); err != nil {
		return nil, err
	}

	if input.AssignedTo != nil && *input.AssignedTo != input.CreatedBy {
		creatorName := s.userFullName(input.CreatedBy)
		if err := s.notify(&models.Notification{
			UserID:    *input.AssignedTo,
			Title:     "New task assigned",
			Content:   fmt.Sprintf("%s assigned you to %q", creatorName, task.Title),
			Type:      models.NotificationTaskAssigned,
			RelatedID: &task.ID,
		}); err != nil {
			return nil, err
		}
	}

	return s.enricher.EnrichTask(*task)
}

// UpdateTask applies a partial update. A status change logs an activity
// attributed to the effective actor (incoming assignee, existing assignee,
// creator — first set) and, when the task was completed by someone other
// than the creator, notifies the creator. An assignee change to a new
// non-nil user notifies that user; this check is independent of the status
// change and both can fire in the same call.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*dto.TaskDTO, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	prevStatus := task.Status
	prevAssignee := task.AssignedTo

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.ClearAssignee {
		task.AssignedTo = nil
	} else if input.AssignedTo != nil {
		task.AssignedTo = input.AssignedTo
	}
	if input.ClearTeam {
		task.TeamID = nil
	} else if input.TeamID != nil {
		task.TeamID = input.TeamID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if input.Status != nil && *input.Status != prevStatus {
		actorID := task.CreatedBy
		switch {
		case input.AssignedTo != nil:
			actorID = *input.AssignedTo
		case prevAssignee != nil:
			actorID = *prevAssignee
		}

		action := models.ActivityUpdated
		if *input.Status == models.TaskStatusCompleted {
			action = models.ActivityCompleted
		}
		if err := s.recordActivity(actorID, action, task.ID); err != nil {
			return nil, err
		}

		if *input.Status == models.TaskStatusCompleted && task.CreatedBy != actorID {
			actorName := s.userFullName(actorID)
			if err := s.notify(&models.Notification{
				UserID:    task.CreatedBy,
				Title:     "Task completed",
				Content:   fmt.Sprintf("%s marked %q as complete", actorName, task.Title),
				Type:      models.NotificationTaskCompleted,
				RelatedID: &task.ID,
			}); err != nil {
				return nil, err
			}
		}
	}

	if input.AssignedTo != nil && (prevAssignee == nil || *input.AssignedTo != *prevAssignee) {
		creatorName := s.userFullName(task.CreatedBy)
		if err := s.notify(&models.Notification{
			UserID:    *input.AssignedTo,
			Title:     "Task assigned",
			Content:   fmt.Sprintf("%s assigned you to %q", creatorName, task.Title),
			Type:      models.NotificationTaskAssigned,
			RelatedID: &task.ID,
		}); err != nil {
			return nil, err
		}
	}

	return s.enricher.EnrichTask(*task)
}

// DeleteTask soft-deletes a task. Comments, notifications and activities
// referencing it are left in place.
func (s *TaskService) DeleteTask(taskID uint64) error {
	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}

	task.IsDeleted = true
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// RestoreTask clears the soft-delete flag and returns the enriched task
func (s *TaskService) RestoreTask(taskID uint64) (*dto.TaskDTO, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	task.IsDeleted = false
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to restore task: %w", err)
	}

	return s.enricher.EnrichTask(*task)
}

// GetTaskStats derives the dashboard counters over all non-deleted tasks.
// A task with no due date is never overdue, and neither is a completed one.
func (s *TaskService) GetTaskStats() (*dto.TaskStatsDTO, error) {
	tasks, err := s.taskRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for stats: %w", err)
	}

	now := time.Now()
	stats := &dto.TaskStatsDTO{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusCompleted:
			stats.Completed++
		case models.TaskStatusInProgress:
			stats.InProgress++
		}
		if task.Status != models.TaskStatusCompleted && task.DueDate != nil && task.DueDate.Before(now) {
			stats.Overdue++
		}
	}

	return stats, nil
}

// ListComments returns a task's comments with their authors, oldest first
func (s *TaskService) ListComments(taskID uint64) ([]dto.CommentDTO, error) {
	comments, err := s.commentRepo.ListByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return s.enricher.EnrichComments(comments)
}

// AddComment appends a comment, logs the activity and notifies the task's
// creator and assignee when they differ from the commenter.
func (s *TaskService) AddComment(taskID uint64, input CreateCommentInput) (*dto.CommentDTO, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TaskID:  taskID,
		UserID:  input.UserID,
		Content: input.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := s.recordActivity(input.UserID, models.ActivityCommented, taskID); err != nil {
		return nil, err
	}

	commenterName := s.userFullName(input.UserID)

	if task.CreatedBy != input.UserID {
		if err := s.notify(&models.Notification{
			UserID:    task.CreatedBy,
			Title:     "New comment",
			Content:   fmt.Sprintf("%s commented on %q", commenterName, task.Title),
			Type:      models.NotificationComment,
			RelatedID: &task.ID,
		}); err != nil {
			return nil, err
		}
	}

	if task.AssignedTo != nil && *task.AssignedTo != input.UserID && *task.AssignedTo != task.CreatedBy {
		if err := s.notify(&models.Notification{
			UserID:    *task.AssignedTo,
			Title:     "New comment",
			Content:   fmt.Sprintf("%s commented on %q", commenterName, task.Title),
			Type:      models.NotificationComment,
			RelatedID: &task.ID,
		}); err != nil {
			return nil, err
		}
	}

	enriched, err := s.enricher.EnrichComments([]models.Comment{*comment})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

func (s *TaskService) findTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func (s *TaskService) recordActivity(userID uint64, action models.ActivityAction, taskID uint64) error {
	activity := &models.Activity{
		UserID:     userID,
		Action:     action,
		EntityType: models.EntityTypeTask,
		EntityID:   taskID,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (s *TaskService) notify(notification *models.Notification) error {
	if err := s.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// userFullName resolves a display name for notification text; an unknown
// user falls back to a placeholder rather than failing the mutation.
func (s *TaskService) userFullName(userID uint64) string {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "Someone"
	}
	return user.FullName
}
