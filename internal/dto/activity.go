package dto

import (
	"time"

	"github.com/teamflow/teamflow-api/internal/models"
)

// ActivityDTO represents an activity feed entry with its actor and the
// referenced entity attached.
type ActivityDTO struct {
	ID         uint64                `json:"id"`
	UserID     uint64                `json:"userId"`
	Action     models.ActivityAction `json:"action"`
	EntityType string                `json:"entityType"`
	EntityID   uint64                `json:"entityId"`
	CreatedAt  time.Time             `json:"createdAt"`
	User       *UserSummaryDTO       `json:"user,omitempty"`
	Entity     *TaskDTO              `json:"entity"`
}

// ToActivityDTO converts an Activity model to ActivityDTO; the actor and
// entity are filled in by the enricher.
func ToActivityDTO(activity models.Activity) ActivityDTO {
	return ActivityDTO{
		ID:         activity.ID,
		UserID:     activity.UserID,
		Action:     activity.Action,
		EntityType: activity.EntityType,
		EntityID:   activity.EntityID,
		CreatedAt:  activity.CreatedAt,
	}
}
