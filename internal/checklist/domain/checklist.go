package domain

import (
	"errors"
	"time"
)

// ErrUnknownItem is returned when progress is recorded against an item id
// that is not part of the checklist.
var ErrUnknownItem = errors.New("unknown checklist item")

// Item is one entry in the planning checklist
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Timeframe   string `json:"timeframe"`
	SortOrder   int    `json:"sort_order"`
}

// Category groups checklist items by planning timeframe
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Timeframe   string `json:"timeframe"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Progress records a user's state for one checklist item. The checklist
// itself is static; only progress rows are stored.
type Progress struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"uniqueIndex:idx_user_item;not null"`
	ItemID      string     `json:"item_id" gorm:"uniqueIndex:idx_user_item;not null"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Progress) TableName() string {
	return "checklist_progress"
}
