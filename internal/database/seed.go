package database

import (
	"fmt"
	"log"
	"time"

	"github.com/teamflow/teamflow-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates an empty database with demo data. It is a no-op when any
// users already exist.
func Seed() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	log.Println("Seeding database with demo data...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	john := &models.User{
		Username:         "johndoe",
		Password:         string(hash),
		FullName:         "John Doe",
		Email:            "john@example.com",
		Avatar:           "https://ui-avatars.com/api/?name=John+Doe&background=0D8ABC&color=fff",
		ExperiencePoints: 750,
		Rank:             "Intermediate",
	}
	jane := &models.User{
		Username:         "janedoe",
		Password:         string(hash),
		FullName:         "Jane Doe",
		Email:            "jane@example.com",
		Avatar:           "https://ui-avatars.com/api/?name=Jane+Doe&background=0D8ABC&color=fff",
		ExperiencePoints: 1500,
		Rank:             "Expert",
	}
	bob := &models.User{
		Username:         "bobsmith",
		Password:         string(hash),
		FullName:         "Bob Smith",
		Email:            "bob@example.com",
		Avatar:           "https://ui-avatars.com/api/?name=Bob+Smith&background=0D8ABC&color=fff",
		ExperiencePoints: 2500,
		Rank:             "Master",
	}
	for _, u := range []*models.User{john, jane, bob} {
		if err := DB.Create(u).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}

	marketing := &models.Team{Name: "Marketing"}
	development := &models.Team{Name: "Development"}
	for _, t := range []*models.Team{marketing, development} {
		if err := DB.Create(t).Error; err != nil {
			return fmt.Errorf("failed to seed team %s: %w", t.Name, err)
		}
	}

	memberships := []models.TeamMember{
		{UserID: john.ID, TeamID: marketing.ID},
		{UserID: jane.ID, TeamID: marketing.ID},
		{UserID: bob.ID, TeamID: development.ID},
		{UserID: john.ID, TeamID: development.ID},
	}
	if err := DB.Create(&memberships).Error; err != nil {
		return fmt.Errorf("failed to seed team members: %w", err)
	}

	in := func(d time.Duration) *time.Time {
		t := time.Now().Add(d)
		return &t
	}

	tasks := []*models.Task{
		{
			Title:       "Update dashboard analytics",
			Description: "Integrate new analytics features into the dashboard",
			Status:      models.TaskStatusTodo,
			Priority:    models.TaskPriorityHigh,
			DueDate:     in(7 * 24 * time.Hour),
			AssignedTo:  &john.ID,
			CreatedBy:   bob.ID,
			TeamID:      &development.ID,
		},
		{
			Title:       "Design new marketing materials",
			Description: "Create new brochures and digital assets for Q3 campaign",
			Status:      models.TaskStatusInProgress,
			Priority:    models.TaskPriorityMedium,
			DueDate:     in(14 * 24 * time.Hour),
			AssignedTo:  &jane.ID,
			CreatedBy:   john.ID,
			TeamID:      &marketing.ID,
		},
		{
			Title:       "Fix homepage responsive issues",
			Description: "The homepage breaks on mobile devices",
			Status:      models.TaskStatusInProgress,
			Priority:    models.TaskPriorityHigh,
			DueDate:     in(2 * 24 * time.Hour),
			AssignedTo:  &bob.ID,
			CreatedBy:   john.ID,
			TeamID:      &development.ID,
		},
		{
			Title:       "Quarterly report preparation",
			Description: "Prepare data for quarterly stakeholder meeting",
			Status:      models.TaskStatusTodo,
			Priority:    models.TaskPriorityMedium,
			DueDate:     in(10 * 24 * time.Hour),
			AssignedTo:  &john.ID,
			CreatedBy:   jane.ID,
			TeamID:      &marketing.ID,
		},
		{
			Title:       "Code refactoring for backend services",
			Description: "Improve code quality and reduce technical debt",
			Status:      models.TaskStatusCompleted,
			Priority:    models.TaskPriorityLow,
			DueDate:     in(-2 * 24 * time.Hour),
			AssignedTo:  &bob.ID,
			CreatedBy:   bob.ID,
			TeamID:      &development.ID,
		},
	}
	for _, t := range tasks {
		if err := DB.Create(t).Error; err != nil {
			return fmt.Errorf("failed to seed task %q: %w", t.Title, err)
		}
	}

	comments := []models.Comment{
		{TaskID: tasks[0].ID, UserID: bob.ID, Content: "Let's focus on improving the UI first"},
		{TaskID: tasks[0].ID, UserID: john.ID, Content: "I'll start working on the UI improvements today"},
		{TaskID: tasks[2].ID, UserID: john.ID, Content: "I've identified the issue with mobile responsiveness"},
		{TaskID: tasks[2].ID, UserID: bob.ID, Content: "Great! Let me know if you need help fixing it"},
	}
	if err := DB.Create(&comments).Error; err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	notifications := []models.Notification{
		{
			UserID:    john.ID,
			Title:     "Task assigned",
			Content:   "You've been assigned a new task: Update dashboard analytics",
			Type:      models.NotificationTaskAssigned,
			RelatedID: &tasks[0].ID,
		},
		{
			UserID:    jane.ID,
			Title:     "Task assigned",
			Content:   "You've been assigned a new task: Design new marketing materials",
			Type:      models.NotificationTaskAssigned,
			RelatedID: &tasks[1].ID,
		},
		{
			UserID:    bob.ID,
			Title:     "Task completed",
			Content:   "You marked a task as completed: Code refactoring for backend services",
			Type:      models.NotificationTaskCompleted,
			RelatedID: &tasks[4].ID,
			IsRead:    true,
		},
	}
	if err := DB.Create(&notifications).Error; err != nil {
		return fmt.Errorf("failed to seed notifications: %w", err)
	}

	activities := []models.Activity{
		{UserID: bob.ID, Action: models.ActivityCreated, EntityType: models.EntityTypeTask, EntityID: tasks[0].ID},
		{UserID: john.ID, Action: models.ActivityCreated, EntityType: models.EntityTypeTask, EntityID: tasks[1].ID},
		{UserID: john.ID, Action: models.ActivityCreated, EntityType: models.EntityTypeTask, EntityID: tasks[2].ID},
		{UserID: jane.ID, Action: models.ActivityCreated, EntityType: models.EntityTypeTask, EntityID: tasks[3].ID},
		{UserID: bob.ID, Action: models.ActivityCreated, EntityType: models.EntityTypeTask, EntityID: tasks[4].ID},
		{UserID: bob.ID, Action: models.ActivityCompleted, EntityType: models.EntityTypeTask, EntityID: tasks[4].ID},
	}
	if err := DB.Create(&activities).Error; err != nil {
		return fmt.Errorf("failed to seed activities: %w", err)
	}

	log.Println("Database seeded successfully")
	return nil
}
