package services

import (
	"fmt"

	"github.com/teamflow/teamflow-api/internal/dto"
	"github.com/teamflow/teamflow-api/internal/models"
	"github.com/teamflow/teamflow-api/internal/repository"
)

// Enricher composes persisted rows with their related records into read
// models. It issues at most one batched lookup per related collection, so
// enriching a page of tasks never fans out into per-row queries. A nil
// teamId or assignedTo simply yields an absent relation.
type Enricher struct {
	userRepo    repository.UserRepository
	teamRepo    repository.TeamRepository
	taskRepo    repository.TaskRepository
	commentRepo repository.CommentRepository
}

// NewEnricher creates a new Enricher
func NewEnricher(
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	taskRepo repository.TaskRepository,
	commentRepo repository.CommentRepository,
) *Enricher {
	return &Enricher{
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
	}
}

// EnrichTasks attaches team summary, assignee summary and comment count to
// each task in the batch.
func (e *Enricher) EnrichTasks(tasks []models.Task) ([]dto.TaskDTO, error) {
	result := make([]dto.TaskDTO, 0, len(tasks))
	if len(tasks) == 0 {
		return result, nil
	}

	teamIDs := make([]uint64, 0, len(tasks))
	assigneeIDs := make([]uint64, 0, len(tasks))
	taskIDs := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
		if task.TeamID != nil {
			teamIDs = append(teamIDs, *task.TeamID)
		}
		if task.AssignedTo != nil {
			assigneeIDs = append(assigneeIDs, *task.AssignedTo)
		}
	}

	teams, err := e.teamRepo.FindByIDs(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load task teams: %w", err)
	}
	assignees, err := e.userRepo.FindByIDs(assigneeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load task assignees: %w", err)
	}
	commentCounts, err := e.commentRepo.CountByTaskIDs(taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count task comments: %w", err)
	}

	teamMap := make(map[uint64]models.Team, len(teams))
	for _, team := range teams {
		teamMap[team.ID] = team
	}
	assigneeMap := make(map[uint64]models.User, len(assignees))
	for _, user := range assignees {
		assigneeMap[user.ID] = user
	}

	for _, task := range tasks {
		item := dto.ToTaskDTO(task)
		item.CommentCount = commentCounts[task.ID]
		if task.TeamID != nil {
			if team, ok := teamMap[*task.TeamID]; ok {
				summary := dto.ToTeamSummaryDTO(team)
				item.Team = &summary
			}
		}
		if task.AssignedTo != nil {
			if user, ok := assigneeMap[*task.AssignedTo]; ok {
				summary := dto.ToUserSummaryDTO(user)
				item.Assignee = &summary
			}
		}
		result = append(result, item)
	}

	return result, nil
}

// EnrichTask enriches a single task
func (e *Enricher) EnrichTask(task models.Task) (*dto.TaskDTO, error) {
	enriched, err := e.EnrichTasks([]models.Task{task})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// EnrichComments attaches the authoring user to each comment in the batch
func (e *Enricher) EnrichComments(comments []models.Comment) ([]dto.CommentDTO, error) {
	result := make([]dto.CommentDTO, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, comment := range comments {
		userIDs = append(userIDs, comment.UserID)
	}

	users, err := e.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment authors: %w", err)
	}
	userMap := make(map[uint64]models.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}

	for _, comment := range comments {
		item := dto.ToCommentDTO(comment)
		if user, ok := userMap[comment.UserID]; ok {
			summary := dto.ToUserSummaryDTO(user)
			item.User = &summary
		}
		result = append(result, item)
	}

	return result, nil
}

// EnrichActivities attaches the acting user and the referenced task to each
// activity. Soft-deleted tasks are still resolved so old feed entries keep
// their context.
func (e *Enricher) EnrichActivities(activities []models.Activity) ([]dto.ActivityDTO, error) {
	result := make([]dto.ActivityDTO, 0, len(activities))
	if len(activities) == 0 {
		return result, nil
	}

	userIDs := make([]uint64, 0, len(activities))
	taskIDs := make([]uint64, 0, len(activities))
	for _, activity := range activities {
		userIDs = append(userIDs, activity.UserID)
		if activity.EntityType == models.EntityTypeTask {
			taskIDs = append(taskIDs, activity.EntityID)
		}
	}

	users, err := e.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity users: %w", err)
	}
	tasks, err := e.taskRepo.FindByIDs(taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity tasks: %w", err)
	}
	enrichedTasks, err := e.EnrichTasks(tasks)
	if err != nil {
		return nil, err
	}

	userMap := make(map[uint64]models.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}
	taskMap := make(map[uint64]dto.TaskDTO, len(enrichedTasks))
	for _, task := range enrichedTasks {
		taskMap[task.ID] = task
	}

	for _, activity := range activities {
		item := dto.ToActivityDTO(activity)
		if user, ok := userMap[activity.UserID]; ok {
			summary := dto.ToUserSummaryDTO(user)
			item.User = &summary
		}
		if activity.EntityType == models.EntityTypeTask {
			if task, ok := taskMap[activity.EntityID]; ok {
				entity := task
				item.Entity = &entity
			}
		}
		result = append(result, item)
	}

	return result, nil
}

// EnrichMembers attaches the member's user record to each team membership
func (e *Enricher) EnrichMembers(members []models.TeamMember) ([]dto.TeamMemberDTO, error) {
	result := make([]dto.TeamMemberDTO, 0, len(members))
	if len(members) == 0 {
		return result, nil
	}

	userIDs := make([]uint64, 0, len(members))
	for _, member := range members {
		userIDs = append(userIDs, member.UserID)
	}

	users, err := e.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	userMap := make(map[uint64]models.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}

	for _, member := range members {
		item := dto.ToTeamMemberDTO(member)
		if user, ok := userMap[member.UserID]; ok {
			memberUser := dto.ToMemberUserDTO(user)
			item.User = &memberUser
		}
		result = append(result, item)
	}

	return result, nil
}
