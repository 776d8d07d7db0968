package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamflow/teamflow-api/internal/constants"
	apierrors "github.com/teamflow/teamflow-api/internal/errors"
	"github.com/teamflow/teamflow-api/internal/middleware"
	"github.com/teamflow/teamflow-api/internal/services"
	"github.com/teamflow/teamflow-api/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications returns the current user's notifications, newest first
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Error fetching notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAsRead flips a notification's read flag
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid notification ID")
		return
	}

	notification, err := h.notificationService.MarkAsRead(id)
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			apierrors.NotFound(c, "Notification not found")
			return
		}
		apierrors.InternalError(c, "Error marking notification as read")
		return
	}

	c.JSON(http.StatusOK, notification)
}

// MarkAllAsRead flips all of the current user's unread notifications
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.notificationService.MarkAllAsRead(userID); err != nil {
		apierrors.InternalError(c, "Error marking all notifications as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnreadCount returns the current user's unread notification count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	count, err := h.notificationService.CountUnread(userID)
	if err != nil {
		apierrors.InternalError(c, "Error counting unread notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// RecentActivities returns the activity feed, newest first
func (h *NotificationHandler) RecentActivities(c *gin.Context) {
	limit := utils.ParseLimitQuery(c, "limit", constants.DefaultActivityLimit)

	activities, err := h.notificationService.ListRecentActivities(limit)
	if err != nil {
		apierrors.InternalError(c, "Error fetching activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}
