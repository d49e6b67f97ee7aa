package usecase

import (
	"time"

	"wedding-planner-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task manually
	CreateTask(userID, title, description string, dueDate *string, priority string) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves tasks for a user
	GetUserTasks(userID string, includeCompleted bool, limit, offset int) ([]*domain.Task, int64, error)

	// GetUpcomingTasks retrieves open tasks due soon or without a due date
	GetUpcomingTasks(userID string) ([]*domain.Task, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// SetCompleted marks a task completed or reopens it
	SetCompleted(userID, taskID string, completed bool) (*domain.Task, error)

	// SnoozeTask hides a task from the upcoming view until the given time
	SnoozeTask(userID, taskID string, until time.Time) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// RecordExtractedTask persists a task produced by email extraction
	RecordExtractedTask(userID, title string, dueDate *time.Time, priority, sourceID string) error

	// CountUpcoming counts open tasks due soon, for dashboard stats
	CountUpcoming(userID string) (int64, error)
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}
