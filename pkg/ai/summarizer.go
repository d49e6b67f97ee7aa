package ai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	emaildomain "wedding-planner-backend/internal/email/domain"
	"wedding-planner-backend/pkg/logger"
)

// Summarizer turns raw emails into structured summaries and tasks using a
// text-generation provider. All provider failures are absorbed: summarization
// degrades to DefaultEmailSummary and extraction to an empty list, so callers
// never see an error from this type.
type Summarizer struct {
	completer Completer
	breaker   *gobreaker.CircuitBreaker
	log       zerolog.Logger
}

// NewSummarizer wraps a completer with a circuit breaker. A run of provider
// failures opens the breaker and requests degrade immediately instead of
// waiting on a dead upstream.
func NewSummarizer(completer Completer) *Summarizer {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "ai-completer",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Summarizer{
		completer: completer,
		breaker:   breaker,
		log:       logger.New("summarizer"),
	}
}

// SummarizeEmail summarizes a single email. It never fails: any provider or
// parse error yields the default fragment.
func (s *Summarizer) SummarizeEmail(ctx context.Context, from, subject, body string) EmailSummary {
	prompt := buildSummarizePrompt(from, subject, body)

	reply, err := s.complete(ctx, prompt, summaryMaxTokens)
	if err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("summarization failed, using default")
		return DefaultEmailSummary()
	}

	var parsed struct {
		Summary        string   `json:"summary"`
		ActionItems    []string `json:"actionItems"`
		HasActionItems bool     `json:"hasActionItems"`
		Priority       string   `json:"priority"`
		Category       string   `json:"category"`
	}
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		s.log.Warn().Err(err).Msg("model reply was not valid JSON, using default")
		return DefaultEmailSummary()
	}

	result := DefaultEmailSummary()
	if parsed.Summary != "" {
		result.Summary = parsed.Summary
	}
	if parsed.ActionItems != nil {
		result.ActionItems = parsed.ActionItems
	}
	result.HasActionItems = parsed.HasActionItems
	result.Priority = emaildomain.ParsePriority(parsed.Priority)
	result.Category = emaildomain.ParseCategory(parsed.Category)
	return result
}

// ExtractTasks extracts actionable tasks from a batch of emails. Empty input
// returns an empty list without calling the provider; any failure also
// returns an empty list.
func (s *Summarizer) ExtractTasks(ctx context.Context, emails []EmailDescriptor) []TaskExtraction {
	if len(emails) == 0 {
		return []TaskExtraction{}
	}
	if len(emails) > maxEmailsPerExtract {
		emails = emails[:maxEmailsPerExtract]
	}

	prompt := buildExtractPrompt(emails)

	reply, err := s.complete(ctx, prompt, extractMaxTokens)
	if err != nil {
		s.log.Warn().Err(err).Int("emails", len(emails)).Msg("task extraction failed")
		return []TaskExtraction{}
	}

	var parsed []struct {
		Title    string `json:"title"`
		DueDate  string `json:"dueDate"`
		Priority string `json:"priority"`
		Source   string `json:"source"`
	}
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		s.log.Warn().Err(err).Msg("model reply was not a valid JSON array")
		return []TaskExtraction{}
	}

	tasks := make([]TaskExtraction, 0, len(parsed))
	for _, p := range parsed {
		if p.Title == "" {
			continue
		}
		task := TaskExtraction{
			Title:    p.Title,
			Priority: string(emaildomain.ParsePriority(p.Priority)),
			Source:   p.Source,
		}
		if due := parseDueDate(p.DueDate); due != nil {
			task.DueDate = due
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func (s *Summarizer) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reply, err := s.breaker.Execute(func() (interface{}, error) {
		return s.completer.Complete(ctx, prompt, maxTokens)
	})
	if err != nil {
		return "", err
	}
	return reply.(string), nil
}

// extractJSON strips markdown code fences some models wrap around their
// JSON reply, and trims to the outermost object or array.
func extractJSON(reply string) string {
	reply = strings.TrimSpace(reply)

	if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```json")
		reply = strings.TrimPrefix(reply, "```")
		if idx := strings.LastIndex(reply, "```"); idx >= 0 {
			reply = reply[:idx]
		}
		reply = strings.TrimSpace(reply)
	}

	start := strings.IndexAny(reply, "{[")
	if start < 0 {
		return reply
	}
	var end int
	if reply[start] == '{' {
		end = strings.LastIndex(reply, "}")
	} else {
		end = strings.LastIndex(reply, "]")
	}
	if end <= start {
		return reply
	}
	return reply[start : end+1]
}

func parseDueDate(s string) *time.Time {
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
