package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teamflow/teamflow-api/internal/dto"
	"github.com/teamflow/teamflow-api/internal/models"
	"github.com/teamflow/teamflow-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameRequired = errors.New("team name is required")
	ErrUserNotFound     = errors.New("user not found")
)

// TeamService handles teams and rosters
type TeamService struct {
	teamRepo         repository.TeamRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	enricher         *Enricher
}

// NewTeamService creates a new TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	enricher *Enricher,
) *TeamService {
	return &TeamService{
		teamRepo:         teamRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		enricher:         enricher,
	}
}

// ListTeams returns all teams
func (s *TeamService) ListTeams() ([]models.Team, error) {
	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// GetTeam returns a team by id
func (s *TeamService) GetTeam(teamID uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(name string) (*models.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{Name: name}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// ListMembers returns a team's roster with user details attached
func (s *TeamService) ListMembers(teamID uint64) ([]dto.TeamMemberDTO, error) {
	members, err := s.teamRepo.ListMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return s.enricher.EnrichMembers(members)
}

// AddMember adds a user to a team and notifies them
func (s *TeamService) AddMember(teamID, userID uint64) (*models.TeamMember, error) {
	team, err := s.GetTeam(teamID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	member := &models.TeamMember{UserID: userID, TeamID: teamID}
	if err := s.teamRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	notification := &models.Notification{
		UserID:    userID,
		Title:     "Team update",
		Content:   fmt.Sprintf("You were added to the %s team", team.Name),
		Type:      models.NotificationTeamUpdate,
		RelatedID: &team.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return member, nil
}

// ListUserTeams returns the teams a user belongs to
func (s *TeamService) ListUserTeams(userID uint64) ([]models.Team, error) {
	memberships, err := s.teamRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	teamIDs := make([]uint64, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}

	teams, err := s.teamRepo.FindByIDs(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	return teams, nil
}
