package repository

import (
	"wedding-planner-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID finds tasks for a user, ordered by priority rank, then
	// due date (nulls last), then creation time descending
	FindByUserID(userID string, includeCompleted bool, limit, offset int) ([]*domain.Task, int64, error)

	// FindUpcoming finds open tasks due within the window or with no due
	// date, excluding tasks snoozed into the future
	FindUpcoming(userID string) ([]*domain.Task, error)

	// CountUpcoming counts the tasks FindUpcoming would return
	CountUpcoming(userID string) (int64, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
