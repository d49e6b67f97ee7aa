package domain

import (
	"encoding/json"
	"time"
)

// EmailCache stores the AI-generated summary for one email, keyed by the
// upstream message id. Once ProcessedAt is set the row is final: lookups
// return it verbatim and the summarization API is never called again for
// that message.
type EmailCache struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	EmailID        string    `json:"email_id" gorm:"uniqueIndex;not null"`
	ThreadID       string    `json:"thread_id"`
	From           string    `json:"from" gorm:"column:sender"`
	Subject        string    `json:"subject"`
	Snippet        string    `json:"snippet"`
	Body           string    `json:"-" gorm:"type:text"`
	Date           time.Time `json:"date" gorm:"index"`
	Summary        string    `json:"summary" gorm:"type:text"`
	ActionItems    string    `json:"-" gorm:"type:text"` // JSON-encoded []string
	HasActionItems bool      `json:"has_action_items"`
	Priority       Priority  `json:"priority"`
	Category       Category  `json:"category"`

	// ProcessedAt marks the summary as final. Nil means the row may be
	// re-summarized by a later request.
	ProcessedAt *time.Time `json:"processed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (EmailCache) TableName() string {
	return "email_cache"
}

// Processed reports whether the summary is final.
func (e *EmailCache) Processed() bool {
	return e.ProcessedAt != nil
}

// ActionItemList decodes the stored action items. A corrupt or empty
// column decodes to an empty list, never an error.
func (e *EmailCache) ActionItemList() []string {
	if e.ActionItems == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(e.ActionItems), &items); err != nil {
		return []string{}
	}
	return items
}

// SetActionItems encodes the action items for storage.
func (e *EmailCache) SetActionItems(items []string) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		e.ActionItems = "[]"
		return
	}
	e.ActionItems = string(data)
}
