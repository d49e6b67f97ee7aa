package usecase

import (
	"context"
	"time"

	emaildomain "wedding-planner-backend/internal/email/domain"
	"wedding-planner-backend/pkg/ai"
)

// MailProvider fetches raw messages from an upstream mailbox. Implemented by
// pkg/gmail and pkg/imapmail.
type MailProvider interface {
	FetchMessages(ctx context.Context, accessToken string, limit int, query string) ([]*emaildomain.Message, error)
}

// SummarizerService produces structured summaries and task extractions.
// Implementations never return errors; they degrade to defaults instead.
type SummarizerService interface {
	SummarizeEmail(ctx context.Context, from, subject, body string) ai.EmailSummary
	ExtractTasks(ctx context.Context, emails []ai.EmailDescriptor) []ai.TaskExtraction
}

// TaskRecorder persists tasks derived from emails. Implemented by the task
// usecase; defined here so the email package does not depend on it.
type TaskRecorder interface {
	RecordExtractedTask(userID, title string, dueDate *time.Time, priority, sourceID string) error
}

// EmailUsecase defines the interface for email ingestion operations
type EmailUsecase interface {
	// GetEmails returns summarized emails, serving from the cache when
	// possible. The cached flag reports whether the mailbox was skipped.
	GetEmails(ctx context.Context, accessToken string, limit int, refresh bool) ([]*emaildomain.EmailCache, bool, error)
	// ExtractTasks runs task extraction over the most recent cached emails
	// and records the results. Returns the number of tasks created.
	ExtractTasks(ctx context.Context, userID string, limit int) (int, error)
}
