package handlers

import (
	"bytes"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *TeamHandlerTestSuite) SetupTest() {
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
	handler := NewTeamHandler(teamService)

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint64(1))
		c.Next()
	})

	teams := suite.router.Group("/api/teams")
	teams.GET("", handler.ListTeams)
	teams.POST("", handler.CreateTeam)
	teams.GET("/:id", handler.GetTeam)
	teams.GET("/:id/members", handler.ListMembers)
	teams.POST("/:id/members", handler.AddMember)
}

// TearDownTest runs after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TeamHandlerTestSuite) createTestUser(username, fullName string) *models.User {
	user := &models.User{
		Username: username,
		Password: "hashedpassword",
		FullName: fullName,
		Email:    username + "@example.com",
	}
	suite.db.Create(user)
	return user
}

func (suite *TeamHandlerTestSuite) createTestTeam(name string) *models.Team {
	team := &models.Team{Name: name}
	suite.db.Create(team)
	return team
}

func (suite *TeamHandlerTestSuite) performRequest(method, url string, body any) *httptest.ResponseRecorder {
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

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.createTestTeam("Marketing")
	suite.createTestTeam("Development")

	w := suite.performRequest(http.MethodGet, "/api/teams", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var listed []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Len(listed, 2)
}

func (suite *TeamHandlerTestSuite) TestGetTeam_NotFound() {
	w := suite.performRequest(http.MethodGet, "/api/teams/42", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	w := suite.performRequest(http.MethodPost, "/api/teams", gin.H{"name": "Platform"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("Platform", created["name"])
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_MissingName() {
	w := suite.performRequest(http.MethodPost, "/api/teams", gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TeamHandlerTestSuite) TestAddMember_NotifiesUser() {
	team := suite.createTestTeam("Marketing")
	user := suite.createTestUser("jane", "Jane Smith")

	w := suite.performRequest(http.MethodPost, "/api/teams/1/members", gin.H{"userId": user.ID})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var notification models.Notification
	err := suite.db.Where("user_id = ? AND type = ?", user.ID, models.NotificationTeamUpdate).
		First(&notification).Error
	suite.Require().NoError(err)
	suite.Equal("You were added to the Marketing team", notification.Content)
	suite.Require().NotNil(notification.RelatedID)
	suite.Equal(team.ID, *notification.RelatedID)
}

func (suite *TeamHandlerTestSuite) TestAddMember_TeamNotFound() {
	user := suite.createTestUser("jane", "Jane Smith")

	w := suite.performRequest(http.MethodPost, "/api/teams/9/members", gin.H{"userId": user.ID})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TeamHandlerTestSuite) TestAddMember_UserNotFound() {
	suite.createTestTeam("Marketing")

	w := suite.performRequest(http.MethodPost, "/api/teams/1/members", gin.H{"userId": 77})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TeamHandlerTestSuite) TestListMembers_IncludesUserDetails() {
	team := suite.createTestTeam("Marketing")
	user := suite.createTestUser("jane", "Jane Smith")
	suite.db.Create(&models.TeamMember{TeamID: team.ID, UserID: user.ID})

	w := suite.performRequest(http.MethodGet, "/api/teams/1/members", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var members []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &members))
	suite.Require().Len(members, 1)

	memberUser := members[0]["user"].(map[string]any)
	suite.Equal("Jane Smith", memberUser["fullName"])
	suite.Equal("jane@example.com", memberUser["email"])
	suite.NotContains(memberUser, "password")
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
