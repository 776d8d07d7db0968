package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	db            *gorm.DB
	router        *gin.Engine
	currentUserID uint64
}

// SetupTest runs before each test
func (suite *UserHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

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

	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	teamRepo := repository.NewTeamRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	commentRepo := repository.NewCommentRepository(suite.db)
	notificationRepo := repository.NewNotificationRepository(suite.db)

	enricher := services.NewEnricher(userRepo, teamRepo, taskRepo, commentRepo)
	teamService := services.NewTeamService(teamRepo, userRepo, notificationRepo, enricher)
	userService := services.NewUserService(userRepo)
	handler := NewUserHandler(userService, teamService)

	gin.SetMode(gin.TestMode)

	suite.currentUserID = 1
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, suite.currentUserID)
		c.Next()
	})

	users := suite.router.Group("/api/users")
	users.GET("", handler.ListUsers)
	users.GET("/current", handler.GetCurrentUser)
	users.GET("/:id", handler.GetUser)
	users.GET("/:id/teams", handler.GetUserTeams)
}

// TearDownTest runs after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserHandlerTestSuite) createTestUser(username, fullName string) *models.User {
	user := &models.User{
		Username: username,
		Password: "hashedpassword",
		FullName: fullName,
		Email:    username + "@example.com",
	}
	suite.db.Create(user)
	return user
}

func (suite *UserHandlerTestSuite) performRequest(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) TestListUsers_StripsPasswords() {
	suite.createTestUser("john", "John Doe")
	suite.createTestUser("jane", "Jane Smith")

	w := suite.performRequest("/api/users")
	suite.Require().Equal(http.StatusOK, w.Code)

	var listed []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Require().Len(listed, 2)
	for _, user := range listed {
		suite.NotContains(user, "password")
		suite.NotEmpty(user["username"])
	}
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	user := suite.createTestUser("john", "John Doe")
	suite.currentUserID = user.ID

	w := suite.performRequest("/api/users/current")
	suite.Require().Equal(http.StatusOK, w.Code)

	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("john", body["username"])
	suite.NotContains(body, "password")
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	w := suite.performRequest("/api/users/999")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUserTeams() {
	user := suite.createTestUser("john", "John Doe")

	team := models.Team{Name: "Marketing"}
	suite.db.Create(&team)
	other := models.Team{Name: "Development"}
	suite.db.Create(&other)
	suite.db.Create(&models.TeamMember{TeamID: team.ID, UserID: user.ID})

	w := suite.performRequest("/api/users/1/teams")
	suite.Require().Equal(http.StatusOK, w.Code)

	var teams []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &teams))
	suite.Require().Len(teams, 1)
	suite.Equal("Marketing", teams[0]["name"])
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
