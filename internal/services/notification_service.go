package services

import (
	"errors"
	"fmt"

	"github.com/teamflow/teamflow-api/internal/constants"
	"github.com/teamflow/teamflow-api/internal/dto"
	"github.com/teamflow/teamflow-api/internal/models"
	"github.com/teamflow/teamflow-api/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService exposes the inbox operations and the activity feed
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	enricher         *Enricher
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
	enricher *Enricher,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		enricher:         enricher,
	}
}

// ListForUser returns a user's notifications, newest first
func (s *NotificationService) ListForUser(userID uint64) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead flips a notification's read flag
func (s *NotificationService) MarkAsRead(id uint64) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(notification); err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return notification, nil
}

// MarkAllAsRead flips all of a user's unread notifications. Calling it when
// none are unread is a no-op.
func (s *NotificationService) MarkAllAsRead(userID uint64) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// CountUnread counts a user's unread notifications
func (s *NotificationService) CountUnread(userID uint64) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// ListRecentActivities returns the newest activity entries with actor and
// entity attached. A non-positive limit falls back to the default; the
// limit is capped to keep the feed bounded.
func (s *NotificationService) ListRecentActivities(limit int) ([]dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = constants.DefaultActivityLimit
	}
	if limit > constants.MaxActivityLimit {
		limit = constants.MaxActivityLimit
	}

	activities, err := s.activityRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return s.enricher.EnrichActivities(activities)
}
