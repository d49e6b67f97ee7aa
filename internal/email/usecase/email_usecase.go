package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	emaildomain "wedding-planner-backend/internal/email/domain"
	"wedding-planner-backend/internal/email/repository"
	"wedding-planner-backend/pkg/ai"
	"wedding-planner-backend/pkg/config"
	"wedding-planner-backend/pkg/logger"
)

const defaultEmailLimit = 10

// emailUsecase implements EmailUsecase interface
type emailUsecase struct {
	cacheRepo    repository.EmailCacheRepository
	mailProvider MailProvider
	summarizer   SummarizerService
	tasks        TaskRecorder
	concurrency  int
	inflight     singleflight.Group
	log          zerolog.Logger
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(cacheRepo repository.EmailCacheRepository, mailProvider MailProvider, summarizer SummarizerService, tasks TaskRecorder, cfg *config.Config) EmailUsecase {
	concurrency := cfg.SummaryMaxConcurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return &emailUsecase{
		cacheRepo:    cacheRepo,
		mailProvider: mailProvider,
		summarizer:   summarizer,
		tasks:        tasks,
		concurrency:  concurrency,
		log:          logger.New("email-usecase"),
	}
}

// GetEmails returns summarized emails. Without refresh the cache is consulted
// first and served whenever any rows exist. With refresh the mailbox is always
// re-listed, but messages whose summary is already final are served verbatim;
// a message is summarized at most once.
func (u *emailUsecase) GetEmails(ctx context.Context, accessToken string, limit int, refresh bool) ([]*emaildomain.EmailCache, bool, error) {
	if limit <= 0 {
		limit = defaultEmailLimit
	}

	if !refresh {
		cached, err := u.cacheRepo.ListRecent(limit)
		if err != nil {
			return nil, false, err
		}
		if len(cached) > 0 {
			return cached, true, nil
		}
	}

	messages, err := u.mailProvider.FetchMessages(ctx, accessToken, limit, "")
	if err != nil {
		return nil, false, fmt.Errorf("unable to fetch emails: %w", err)
	}

	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.ID
	}
	existing, err := u.cacheRepo.FindByEmailIDs(ids)
	if err != nil {
		return nil, false, err
	}

	results := make([]*emaildomain.EmailCache, len(messages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)

	for i, msg := range messages {
		if entry, ok := existing[msg.ID]; ok && entry.Processed() {
			results[i] = entry
			continue
		}

		i, msg := i, msg
		g.Go(func() error {
			entry, err := u.summarizeAndStore(gctx, msg)
			if err != nil {
				return err
			}
			results[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	return results, false, nil
}

// summarizeAndStore runs the summarizer for one message and persists the
// result as final. Concurrent requests for the same message id share one
// summarization call.
func (u *emailUsecase) summarizeAndStore(ctx context.Context, msg *emaildomain.Message) (*emaildomain.EmailCache, error) {
	v, err, _ := u.inflight.Do(msg.ID, func() (interface{}, error) {
		summary := u.summarizer.SummarizeEmail(ctx, msg.From, msg.Subject, msg.Body)

		now := time.Now()
		entry := &emaildomain.EmailCache{
			ID:             uuid.New().String(),
			EmailID:        msg.ID,
			ThreadID:       msg.ThreadID,
			From:           msg.From,
			Subject:        msg.Subject,
			Snippet:        msg.Snippet,
			Body:           msg.Body,
			Date:           msg.Date,
			Summary:        summary.Summary,
			HasActionItems: summary.HasActionItems,
			Priority:       summary.Priority,
			Category:       summary.Category,
			ProcessedAt:    &now,
		}
		entry.SetActionItems(summary.ActionItems)

		if err := u.cacheRepo.Upsert(entry); err != nil {
			// A failed cache write degrades the next request to a
			// re-summarization; the current one still gets its result.
			u.log.Warn().Err(err).Str("email_id", msg.ID).Msg("failed to cache summary")
		}
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*emaildomain.EmailCache), nil
}

// ExtractTasks runs task extraction over the most recent cached emails and
// records each result. Returns the number of tasks created.
func (u *emailUsecase) ExtractTasks(ctx context.Context, userID string, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultEmailLimit
	}

	entries, err := u.cacheRepo.ListRecent(limit)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	descriptors := make([]ai.EmailDescriptor, len(entries))
	for i, e := range entries {
		descriptors[i] = ai.EmailDescriptor{
			From:    e.From,
			Subject: e.Subject,
			Body:    e.Body,
			Date:    e.Date,
		}
	}

	extractions := u.summarizer.ExtractTasks(ctx, descriptors)

	created := 0
	for _, t := range extractions {
		if err := u.tasks.RecordExtractedTask(userID, t.Title, t.DueDate, t.Priority, t.Source); err != nil {
			u.log.Warn().Err(err).Str("title", t.Title).Msg("failed to record extracted task")
			continue
		}
		created++
	}
	return created, nil
}
