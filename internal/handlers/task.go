package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/teamflow/teamflow-api/internal/errors"
	"github.com/teamflow/teamflow-api/internal/middleware"
	"github.com/teamflow/teamflow-api/internal/models"
	"github.com/teamflow/teamflow-api/internal/repository"
	"github.com/teamflow/teamflow-api/internal/services"
	"github.com/teamflow/teamflow-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns enriched tasks. The default listing excludes
// soft-deleted tasks; ?isDeleted=true lists only the trash.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := repository.TaskFilter{
		IsDeleted:  c.Query("isDeleted") == "true",
		AssignedTo: utils.ParseUintQuery(c, "assignedTo"),
	}
	if status := c.Query("status"); status != "" {
		s := models.TaskStatus(status)
		filter.Status = &s
	}

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		apierrors.InternalError(c, "Error fetching tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task with its comments. Soft-deleted tasks still
// resolve here so the trash view can display them.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Error fetching task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		Status      string     `json:"status" binding:"omitempty,oneof=todo in-progress completed"`
		Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
		DueDate     *time.Time `json:"dueDate"`
		AssignedTo  *uint64    `json:"assignedTo"`
		CreatedBy   *uint64    `json:"createdBy"`
		TeamID      *uint64    `json:"teamId"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid task data", err.Error())
		return
	}

	createdBy, _ := middleware.GetUserID(c)
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   createdBy,
		TeamID:      req.TeamID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, "Invalid task data")
			return
		}
		apierrors.InternalError(c, "Error creating task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update. The raw body is inspected so that a
// field being present-but-null (clear) can be told apart from absent.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := buildUpdateInput(raw)
	if err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid task data", err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(id, *input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrTitleRequired):
			apierrors.BadRequest(c, "Invalid task data")
		default:
			apierrors.InternalError(c, "Error updating task")
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask soft-deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Error deleting task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RestoreTask clears the soft-delete flag
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.RestoreTask(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Error restoring task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// TaskStats returns the dashboard counters
func (h *TaskHandler) TaskStats(c *gin.Context) {
	stats, err := h.taskService.GetTaskStats()
	if err != nil {
		apierrors.InternalError(c, "Error fetching task statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListComments returns a task's comments with authors, oldest first
func (h *TaskHandler) ListComments(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	comments, err := h.taskService.ListComments(id)
	if err != nil {
		apierrors.InternalError(c, "Error fetching comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment to a task. The author defaults to the
// current user when the body does not name one.
func (h *TaskHandler) CreateComment(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type CreateCommentRequest struct {
		UserID  *uint64 `json:"userId"`
		Content string  `json:"content" binding:"required"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid comment data", err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	if req.UserID != nil {
		userID = *req.UserID
	}

	comment, err := h.taskService.AddComment(id, services.CreateCommentInput{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrContentRequired):
			apierrors.BadRequest(c, "Invalid comment data")
		default:
			apierrors.InternalError(c, "Error creating comment")
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func buildUpdateInput(raw map[string]any) (*services.UpdateTaskInput, error) {
	var input services.UpdateTaskInput

	if v, ok := raw["title"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("title must be a string")
		}
		input.Title = &s
	}
	if v, ok := raw["description"]; ok {
		if s, ok := v.(string); ok {
			input.Description = &s
		}
	}
	if v, ok := raw["status"]; ok {
		s, _ := v.(string)
		status := models.TaskStatus(s)
		switch status {
		case models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusCompleted:
			input.Status = &status
		default:
			return nil, errors.New("status must be one of todo, in-progress, completed")
		}
	}
	if v, ok := raw["priority"]; ok {
		s, _ := v.(string)
		priority := models.TaskPriority(s)
		switch priority {
		case models.TaskPriorityLow, models.TaskPriorityMedium, models.TaskPriorityHigh:
			input.Priority = &priority
		default:
			return nil, errors.New("priority must be one of low, medium, high")
		}
	}
	if v, ok := raw["dueDate"]; ok {
		if v == nil {
			input.ClearDueDate = true
		} else if s, ok := v.(string); ok {
			parsed, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, errors.New("dueDate must be an RFC 3339 timestamp")
			}
			input.DueDate = &parsed
		}
	}
	if v, ok := raw["assignedTo"]; ok {
		if v == nil {
			input.ClearAssignee = true
		} else if n, ok := v.(float64); ok && n >= 0 {
			id := uint64(n)
			input.AssignedTo = &id
		} else {
			return nil, errors.New("assignedTo must be a user id or null")
		}
	}
	if v, ok := raw["teamId"]; ok {
		if v == nil {
			input.ClearTeam = true
		} else if n, ok := v.(float64); ok && n >= 0 {
			id := uint64(n)
			input.TeamID = &id
		} else {
			return nil, errors.New("teamId must be a team id or null")
		}
	}

	return &input, nil
}
