package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/teamflow/teamflow-api/internal/config"
	"github.com/teamflow/teamflow-api/internal/constants"
	"github.com/teamflow/teamflow-api/internal/database"
	"github.com/teamflow/teamflow-api/internal/handlers"
	"github.com/teamflow/teamflow-api/internal/middleware"
	"github.com/teamflow/teamflow-api/internal/repository"
	"github.com/teamflow/teamflow-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data when requested
	if cfg.SeedDatabase {
		if err := database.Seed(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	enricher := services.NewEnricher(userRepo, teamRepo, taskRepo, commentRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, commentRepo, notificationRepo, activityRepo, enricher)
	notificationService := services.NewNotificationService(notificationRepo, activityRepo, enricher)
	teamService := services.NewTeamService(teamRepo, userRepo, notificationRepo, enricher)
	userService := services.NewUserService(userRepo)

	// Handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService, teamService)

	// Initialize Gin router
	r := gin.Default()

	// Session middleware with a cookie store; the session only carries the
	// caller identity, which falls back to the demo user.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, store))
	r.Use(middleware.CurrentUser(cfg.DemoUserID))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TeamFlow API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/stats/summary", taskHandler.TaskStats)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/restore", taskHandler.RestoreTask)
			tasks.GET("/:id/comments", taskHandler.ListComments)
			tasks.POST("/:id/comments", taskHandler.CreateComment)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/members", teamHandler.ListMembers)
			teams.POST("/:id/members", teamHandler.AddMember)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
			notifications.POST("/mark-all-read", notificationHandler.MarkAllAsRead)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
		}

		api.GET("/activities/recent", notificationHandler.RecentActivities)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/current", userHandler.GetCurrentUser)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/teams", userHandler.GetUserTeams)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
