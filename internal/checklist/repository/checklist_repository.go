package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-planner-backend/internal/checklist/domain"
)

// ChecklistRepository defines the interface for checklist progress data access
type ChecklistRepository interface {
	// FindProgress retrieves all progress rows for a user
	FindProgress(userID string) ([]*domain.Progress, error)
	// UpsertProgress inserts or replaces the progress for one item
	UpsertProgress(progress *domain.Progress) error
	// CountCompleted counts a user's completed items
	CountCompleted(userID string) (int64, error)
}

// gormChecklistRepository implements ChecklistRepository using GORM
type gormChecklistRepository struct {
	db *gorm.DB
}

// NewGormChecklistRepository creates a new GORM-based ChecklistRepository
func NewGormChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &gormChecklistRepository{db: db}
}

func (r *gormChecklistRepository) FindProgress(userID string) ([]*domain.Progress, error) {
	var progress []*domain.Progress
	err := r.db.Where("user_id = ?", userID).Find(&progress).Error
	return progress, err
}

func (r *gormChecklistRepository) UpsertProgress(progress *domain.Progress) error {
	if progress.ID == "" {
		progress.ID = uuid.New().String()
	}
	progress.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "notes", "updated_at"}),
	}).Create(progress).Error
}

func (r *gormChecklistRepository) CountCompleted(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Progress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
