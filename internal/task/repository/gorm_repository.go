package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wedding-planner-backend/internal/task/domain"
)

// upcomingWindow bounds how far ahead a due date may be to still count as
// upcoming. Tasks without a due date always count.
const upcomingWindow = 30 * 24 * time.Hour

const priorityRank = "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID string, includeCompleted bool, limit, offset int) ([]*domain.Task, int64, error) {
	var tasks []*domain.Task
	var total int64

	query := r.db.Model(&domain.Task{}).Where("user_id = ?", userID)
	if !includeCompleted {
		query = query.Where("completed = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(priorityRank + ", CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Limit(limit).Offset(offset).Find(&tasks).Error

	return tasks, total, err
}

func (r *gormTaskRepository) FindUpcoming(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.upcomingQuery(userID).
		Order(priorityRank + ", CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) CountUpcoming(userID string) (int64, error) {
	var count int64
	err := r.upcomingQuery(userID).Count(&count).Error
	return count, err
}

func (r *gormTaskRepository) upcomingQuery(userID string) *gorm.DB {
	now := time.Now()
	horizon := now.Add(upcomingWindow)
	return r.db.Model(&domain.Task{}).
		Where("user_id = ? AND completed = ?", userID, false).
		Where("due_date IS NULL OR due_date <= ?", horizon).
		Where("snoozed_until IS NULL OR snoozed_until <= ?", now)
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}
