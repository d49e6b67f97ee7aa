package ai

import (
	"context"
	"time"

	emaildomain "wedding-planner-backend/internal/email/domain"
)

// Completer is the interface a text-generation provider implements.
// Add new providers (Claude, OpenAI, local models) by implementing this.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// EmailSummary is the structured result of summarizing one email.
type EmailSummary struct {
	Summary        string               `json:"summary"`
	ActionItems    []string             `json:"actionItems"`
	HasActionItems bool                 `json:"hasActionItems"`
	Priority       emaildomain.Priority `json:"priority"`
	Category       emaildomain.Category `json:"category"`
}

// DefaultEmailSummary is returned whenever summarization fails for any
// reason. Callers can rely on SummarizeEmail never failing.
func DefaultEmailSummary() EmailSummary {
	return EmailSummary{
		Summary:        "Unable to summarize email",
		ActionItems:    []string{},
		HasActionItems: false,
		Priority:       emaildomain.PriorityLow,
		Category:       emaildomain.CategoryGeneral,
	}
}

// TaskExtraction is one actionable task pulled out of an email batch.
type TaskExtraction struct {
	Title    string     `json:"title"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Priority string     `json:"priority"`
	Source   string     `json:"source"`
}

// EmailDescriptor is the slice of an email handed to task extraction.
type EmailDescriptor struct {
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Date    time.Time `json:"date"`
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderClaude ProviderType = "claude"
	ProviderOpenAI ProviderType = "openai"
)
