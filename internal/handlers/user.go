package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/teamflow/teamflow-api/internal/errors"
	"github.com/teamflow/teamflow-api/internal/middleware"
	"github.com/teamflow/teamflow-api/internal/services"
	"github.com/teamflow/teamflow-api/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
	teamService *services.TeamService
}

func NewUserHandler(userService *services.UserService, teamService *services.TeamService) *UserHandler {
	return &UserHandler{
		userService: userService,
		teamService: teamService,
	}
}

// ListUsers returns the user directory with passwords stripped
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Error fetching users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetCurrentUser returns the caller's user record
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.userService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Error fetching current user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns a single user with the password stripped
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Error fetching user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserTeams returns the teams a user belongs to
func (h *UserHandler) GetUserTeams(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	teams, err := h.teamService.ListUserTeams(id)
	if err != nil {
		apierrors.InternalError(c, "Error fetching user teams")
		return
	}

	c.JSON(http.StatusOK, teams)
}
