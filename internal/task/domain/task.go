package domain

import (
	"errors"
	"time"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to a
// different user. Ownership failures are indistinguishable from missing rows
// on purpose.
var ErrTaskNotFound = errors.New("task not found")

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority normalizes a free-form priority string, defaulting to medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Rank orders priorities for sorting: high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// TaskSource identifies where a task came from
type TaskSource string

const (
	SourceManual TaskSource = "manual"
	SourceEmail  TaskSource = "email"
)

// Task represents a wedding to-do item, either created by hand or extracted
// from an email
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority" gorm:"default:medium"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// SnoozedUntil hides the task from the upcoming view until the given time.
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`

	Source   TaskSource `json:"source" gorm:"default:manual"`
	SourceID string     `json:"source_id,omitempty" gorm:"index"` // Reference to the originating email

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
