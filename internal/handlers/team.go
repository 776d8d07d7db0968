package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/teamflow/teamflow-api/internal/errors"
	"github.com/teamflow/teamflow-api/internal/services"
	"github.com/teamflow/teamflow-api/internal/utils"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListTeams returns all teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		apierrors.InternalError(c, "Error fetching teams")
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam returns a single team
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid team ID")
		return
	}

	team, err := h.teamService.GetTeam(id)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			apierrors.NotFound(c, "Team not found")
			return
		}
		apierrors.InternalError(c, "Error fetching team")
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam creates a new team
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	type CreateTeamRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid team data", err.Error())
		return
	}

	team, err := h.teamService.CreateTeam(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrTeamNameRequired) {
			apierrors.BadRequest(c, "Invalid team data")
			return
		}
		apierrors.InternalError(c, "Error creating team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListMembers returns a team's roster with user details
func (h *TeamHandler) ListMembers(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid team ID")
		return
	}

	members, err := h.teamService.ListMembers(id)
	if err != nil {
		apierrors.InternalError(c, "Error fetching team members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember adds a user to a team
func (h *TeamHandler) AddMember(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid team ID")
		return
	}

	type AddMemberRequest struct {
		UserID uint64 `json:"userId" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid member data", err.Error())
		return
	}

	member, err := h.teamService.AddMember(id, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			apierrors.NotFound(c, "Team not found")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		default:
			apierrors.InternalError(c, "Error adding team member")
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}
