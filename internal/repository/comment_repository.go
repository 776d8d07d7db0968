package repository

import (
	"github.com/teamflow/teamflow-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByTaskID lists a task's comments, oldest first
func (r *GormCommentRepository) ListByTaskID(taskID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByTaskIDs returns the comment count per task for the given task IDs
func (r *GormCommentRepository) CountByTaskIDs(taskIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TaskID uint64
		Count  int64
	}
	if err := r.db.Model(&models.Comment{}).
		Select("task_id, count(*) as count").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TaskID] = row.Count
	}
	return counts, nil
}
