package dto

import (
	"time"

	"github.com/teamflow/teamflow-api/internal/models"
)

// CommentDTO represents a comment with its author attached
type CommentDTO struct {
	ID        uint64          `json:"id"`
	TaskID    uint64          `json:"taskId"`
	UserID    uint64          `json:"userId"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	User      *UserSummaryDTO `json:"user,omitempty"`
}

// ToCommentDTO converts a Comment model to CommentDTO; the author is filled
// in by the enricher.
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
