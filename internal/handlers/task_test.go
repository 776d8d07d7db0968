package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/teamflow/teamflow-api/internal/constants"
	"github.com/teamflow/teamflow-api/internal/database"
	"github.com/teamflow/teamflow-api/internal/models"
	"github.com/teamflow/teamflow-api/internal/repository"
	"github.com/teamflow/teamflow-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db            *gorm.DB
	router        *gin.Engine
	currentUserID uint64
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Task{},
		&models.Comment{},
		&models.Notification{},
		&models.Activity{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	teamRepo := repository.NewTeamRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	commentRepo := repository.NewCommentRepository(suite.db)
	notificationRepo := repository.NewNotificationRepository(suite.db)
	activityRepo := repository.NewActivityRepository(suite.db)

	enricher := services.NewEnricher(userRepo, teamRepo, taskRepo, commentRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, commentRepo, notificationRepo, activityRepo, enricher)
	handler := NewTaskHandler(taskService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create router with a fixed caller identity
	suite.currentUserID = 1
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, suite.currentUserID)
		c.Next()
	})

	tasks := suite.router.Group("/api/tasks")
	tasks.GET("", handler.ListTasks)
	tasks.POST("", handler.CreateTask)
	tasks.GET("/stats/summary", handler.TaskStats)
	tasks.GET("/:id", handler.GetTask)
	tasks.PATCH("/:id", handler.UpdateTask)
	tasks.DELETE("/:id", handler.DeleteTask)
	tasks.POST("/:id/restore", handler.RestoreTask)
	tasks.GET("/:id/comments", handler.ListComments)
	tasks.POST("/:id/comments", handler.CreateComment)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestUser(username, fullName string) *models.User {
	user := &models.User{
		Username: username,
		Password: "hashedpassword",
		FullName: fullName,
		Email:    username + "@example.com",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTeam(name string) *models.Team {
	team := &models.Team{Name: name}
	suite.db.Create(team)
	return team
}

// performRequest runs a request through the full router
func (suite *TaskHandlerTestSuite) performRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) decodeBody(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *TaskHandlerTestSuite) TestTaskLifecycle() {
	creator := suite.createTestUser("john", "John Doe")
	assignee := suite.createTestUser("jane", "Jane Smith")

	// Create an assigned task.
	w := suite.performRequest(http.MethodPost, "/api/tasks", gin.H{
		"title":      "Launch checklist",
		"createdBy":  creator.ID,
		"assignedTo": assignee.ID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	suite.decodeBody(w, &created)
	suite.Equal("todo", created["status"])
	suite.Equal("medium", created["priority"])
	suite.EqualValues(0, created["commentCount"])
	suite.Equal("Jane Smith", created["assignee"].(map[string]any)["fullName"])
	taskID := uint64(created["id"].(float64))

	// The assignee was notified about the assignment.
	var notification models.Notification
	err := suite.db.Where("user_id = ? AND type = ?", assignee.ID, models.NotificationTaskAssigned).
		First(&notification).Error
	suite.Require().NoError(err)
	suite.Equal(`John Doe assigned you to "Launch checklist"`, notification.Content)
	suite.False(notification.IsRead)

	// Completing the task notifies the creator.
	w = suite.performRequest(http.MethodPatch, "/api/tasks/1", gin.H{"status": "completed"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated map[string]any
	suite.decodeBody(w, &updated)
	suite.Equal("completed", updated["status"])

	err = suite.db.Where("user_id = ? AND type = ?", creator.ID, models.NotificationTaskCompleted).
		First(&notification).Error
	suite.Require().NoError(err)
	suite.Equal(`Jane Smith marked "Launch checklist" as complete`, notification.Content)

	var activityCount int64
	suite.db.Model(&models.Activity{}).
		Where("action = ? AND entity_id = ?", models.ActivityCompleted, taskID).
		Count(&activityCount)
	suite.EqualValues(1, activityCount)

	// Soft delete hides the task from the default listing.
	w = suite.performRequest(http.MethodDelete, "/api/tasks/1", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success": true}`, w.Body.String())

	var listed []map[string]any
	w = suite.performRequest(http.MethodGet, "/api/tasks", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decodeBody(w, &listed)
	suite.Empty(listed)

	// The trash view and direct lookup still see it.
	w = suite.performRequest(http.MethodGet, "/api/tasks?isDeleted=true", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decodeBody(w, &listed)
	suite.Len(listed, 1)

	w = suite.performRequest(http.MethodGet, "/api/tasks/1", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var detail map[string]any
	suite.decodeBody(w, &detail)
	suite.Equal(true, detail["isDeleted"])

	// Restore brings it back unchanged.
	w = suite.performRequest(http.MethodPost, "/api/tasks/1/restore", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var restored map[string]any
	suite.decodeBody(w, &restored)
	suite.Equal(false, restored["isDeleted"])
	suite.Equal("Launch checklist", restored["title"])
	suite.Equal("completed", restored["status"])

	w = suite.performRequest(http.MethodGet, "/api/tasks", nil)
	suite.decodeBody(w, &listed)
	suite.Len(listed, 1)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingTitle() {
	suite.createTestUser("john", "John Doe")

	w := suite.performRequest(http.MethodPost, "/api/tasks", gin.H{"description": "no title"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidStatus() {
	suite.createTestUser("john", "John Doe")

	w := suite.performRequest(http.MethodPost, "/api/tasks", gin.H{
		"title":  "Bad status",
		"status": "done",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_DefaultsToCurrentUser() {
	creator := suite.createTestUser("john", "John Doe")
	suite.currentUserID = creator.ID

	w := suite.performRequest(http.MethodPost, "/api/tasks", gin.H{"title": "Implicit creator"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	suite.decodeBody(w, &created)
	suite.EqualValues(creator.ID, created["createdBy"])
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	w := suite.performRequest(http.MethodGet, "/api/tasks/999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_InvalidID() {
	w := suite.performRequest(http.MethodGet, "/api/tasks/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_InvalidStatus() {
	creator := suite.createTestUser("john", "John Doe")
	task := models.Task{Title: "T", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, CreatedBy: creator.ID}
	suite.db.Create(&task)

	w := suite.performRequest(http.MethodPatch, "/api/tasks/1", gin.H{"status": "archived"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_ClearAssigneeAndDueDate() {
	creator := suite.createTestUser("john", "John Doe")
	assignee := suite.createTestUser("jane", "Jane Smith")
	due := time.Now().Add(24 * time.Hour)
	task := models.Task{
		Title:      "Clearable",
		Status:     models.TaskStatusTodo,
		Priority:   models.TaskPriorityLow,
		CreatedBy:  creator.ID,
		AssignedTo: &assignee.ID,
		DueDate:    &due,
	}
	suite.db.Create(&task)

	// Explicit nulls clear the fields; omitted fields are untouched.
	w := suite.performRequest(http.MethodPatch, "/api/tasks/1", gin.H{
		"assignedTo": nil,
		"dueDate":    nil,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated map[string]any
	suite.decodeBody(w, &updated)
	suite.Nil(updated["assignedTo"])
	suite.Nil(updated["dueDate"])
	suite.Equal("Clearable", updated["title"])
}

func (suite *TaskHandlerTestSuite) TestTaskStats() {
	creator := suite.createTestUser("john", "John Doe")
	past := time.Now().Add(-24 * time.Hour)

	suite.db.Create(&[]models.Task{
		{Title: "a", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, DueDate: &past, CreatedBy: creator.ID},
		{Title: "b", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityLow, CreatedBy: creator.ID},
		{Title: "c", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityLow, CreatedBy: creator.ID},
		{Title: "d", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, DueDate: &past, CreatedBy: creator.ID, IsDeleted: true},
	})

	// The stats route must not be swallowed by the :id route.
	w := suite.performRequest(http.MethodGet, "/api/tasks/stats/summary", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"total": 3, "completed": 1, "inProgress": 1, "overdue": 1}`, w.Body.String())
}

func (suite *TaskHandlerTestSuite) TestListTasks_StatusFilter() {
	creator := suite.createTestUser("john", "John Doe")
	suite.db.Create(&[]models.Task{
		{Title: "open", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, CreatedBy: creator.ID},
		{Title: "doing", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityLow, CreatedBy: creator.ID},
	})

	w := suite.performRequest(http.MethodGet, "/api/tasks?status=in-progress", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var listed []map[string]any
	suite.decodeBody(w, &listed)
	suite.Require().Len(listed, 1)
	suite.Equal("doing", listed[0]["title"])
}

func (suite *TaskHandlerTestSuite) TestComments() {
	creator := suite.createTestUser("john", "John Doe")
	commenter := suite.createTestUser("jane", "Jane Smith")
	task := models.Task{Title: "Discussed", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, CreatedBy: creator.ID}
	suite.db.Create(&task)

	// The author defaults to the current user when the body omits userId.
	suite.currentUserID = commenter.ID
	w := suite.performRequest(http.MethodPost, "/api/tasks/1/comments", gin.H{"content": "First!"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var comment map[string]any
	suite.decodeBody(w, &comment)
	suite.Equal("First!", comment["content"])
	suite.Equal("Jane Smith", comment["user"].(map[string]any)["fullName"])

	w = suite.performRequest(http.MethodPost, "/api/tasks/1/comments", gin.H{
		"content": "Second",
		"userId":  creator.ID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	// Oldest first.
	w = suite.performRequest(http.MethodGet, "/api/tasks/1/comments", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var comments []map[string]any
	suite.decodeBody(w, &comments)
	suite.Require().Len(comments, 2)
	suite.Equal("First!", comments[0]["content"])
	suite.Equal("Second", comments[1]["content"])

	// The task creator was notified about the other user's comment only.
	var count int64
	suite.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", creator.ID, models.NotificationComment).
		Count(&count)
	suite.EqualValues(1, count)
}

func (suite *TaskHandlerTestSuite) TestCreateComment_TaskNotFound() {
	suite.createTestUser("john", "John Doe")

	w := suite.performRequest(http.MethodPost, "/api/tasks/404/comments", gin.H{"content": "ghost"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
