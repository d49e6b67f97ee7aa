package dto

import (
	"time"

	emaildomain "wedding-planner-backend/internal/email/domain"
)

// EmailFragment is the summarized view of one email returned to the client.
type EmailFragment struct {
	ID             string                `json:"id"`
	ThreadID       string                `json:"thread_id,omitempty"`
	From           string                `json:"from"`
	Subject        string                `json:"subject"`
	Snippet        string                `json:"snippet"`
	Date           time.Time             `json:"date"`
	Summary        string                `json:"summary"`
	ActionItems    []string              `json:"action_items"`
	HasActionItems bool                  `json:"has_action_items"`
	Priority       emaildomain.Priority  `json:"priority"`
	Category       emaildomain.Category  `json:"category"`
}

type EmailsResponse struct {
	Emails []*EmailFragment `json:"emails"`
	Count  int              `json:"count"`
	Cached bool             `json:"cached"`
}

type ExtractTasksResponse struct {
	Created int `json:"created"`
}

// FragmentFromCache converts a stored cache row into the response shape.
func FragmentFromCache(entry *emaildomain.EmailCache) *EmailFragment {
	return &EmailFragment{
		ID:             entry.EmailID,
		ThreadID:       entry.ThreadID,
		From:           entry.From,
		Subject:        entry.Subject,
		Snippet:        entry.Snippet,
		Date:           entry.Date,
		Summary:        entry.Summary,
		ActionItems:    entry.ActionItemList(),
		HasActionItems: entry.HasActionItems,
		Priority:       entry.Priority,
		Category:       entry.Category,
	}
}
