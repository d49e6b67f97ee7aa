package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	emaildomain "wedding-planner-backend/internal/email/domain"
	"wedding-planner-backend/pkg/ai"
	"wedding-planner-backend/pkg/config"
)

// --- Mocks ---

type mockCacheRepo struct {
	mu      sync.Mutex
	entries map[string]*emaildomain.EmailCache
	upserts int
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{entries: make(map[string]*emaildomain.EmailCache)}
}

func (m *mockCacheRepo) FindByEmailIDs(ids []string) (map[string]*emaildomain.EmailCache, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*emaildomain.EmailCache)
	for _, id := range ids {
		if e, ok := m.entries[id]; ok {
			out[id] = e
		}
	}
	return out, nil
}

func (m *mockCacheRepo) ListRecent(limit int) ([]*emaildomain.EmailCache, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*emaildomain.EmailCache
	for _, e := range m.entries {
		out = append(out, e)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockCacheRepo) Upsert(entry *emaildomain.EmailCache) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	m.entries[entry.EmailID] = entry
	return nil
}

type mockProvider struct {
	mu       sync.Mutex
	messages []*emaildomain.Message
	err      error
	calls    int
}

func (m *mockProvider) FetchMessages(_ context.Context, _ string, _ int, _ string) ([]*emaildomain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

type mockSummarizer struct {
	mu          sync.Mutex
	summarized  []string
	extractions []ai.TaskExtraction
}

func (m *mockSummarizer) SummarizeEmail(_ context.Context, _, subject, _ string) ai.EmailSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summarized = append(m.summarized, subject)
	return ai.EmailSummary{
		Summary:        "summary of " + subject,
		ActionItems:    []string{},
		HasActionItems: false,
		Priority:       emaildomain.PriorityLow,
		Category:       emaildomain.CategoryGeneral,
	}
}

func (m *mockSummarizer) ExtractTasks(_ context.Context, emails []ai.EmailDescriptor) []ai.TaskExtraction {
	if len(emails) == 0 {
		return []ai.TaskExtraction{}
	}
	return m.extractions
}

func (m *mockSummarizer) summarizeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.summarized)
}

type mockTaskRecorder struct {
	mu       sync.Mutex
	recorded []string
	err      error
}

func (m *mockTaskRecorder) RecordExtractedTask(_, title string, _ *time.Time, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, title)
	return nil
}

func newTestUsecase(repo *mockCacheRepo, provider *mockProvider, summarizer SummarizerService, tasks *mockTaskRecorder) EmailUsecase {
	return NewEmailUsecase(repo, provider, summarizer, tasks, &config.Config{SummaryMaxConcurrency: 3})
}

func msg(id, subject string, age time.Duration) *emaildomain.Message {
	return &emaildomain.Message{
		ID:      id,
		From:    "sender@example.com",
		Subject: subject,
		Date:    time.Now().Add(-age),
		Body:    "body of " + subject,
	}
}

func processedEntry(id, subject string) *emaildomain.EmailCache {
	now := time.Now()
	return &emaildomain.EmailCache{
		ID:          "row-" + id,
		EmailID:     id,
		Subject:     subject,
		Summary:     "cached summary",
		ProcessedAt: &now,
	}
}

// --- GetEmails ---

func TestGetEmailsSummarizesNewMessages(t *testing.T) {
	repo := newMockCacheRepo()
	provider := &mockProvider{messages: []*emaildomain.Message{
		msg("m1", "Venue quote", time.Hour),
		msg("m2", "Florist availability", 2*time.Hour),
	}}
	summarizer := &mockSummarizer{}
	uc := newTestUsecase(repo, provider, summarizer, &mockTaskRecorder{})

	entries, cached, err := uc.GetEmails(context.Background(), "token", 5, false)
	if err != nil {
		t.Fatalf("GetEmails: %v", err)
	}
	if cached {
		t.Error("cached = true on a cold cache")
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	if summarizer.summarizeCount() != 2 {
		t.Errorf("summarize calls = %d, want 2", summarizer.summarizeCount())
	}
	for _, e := range entries {
		if !e.Processed() {
			t.Errorf("entry %s not marked processed", e.EmailID)
		}
	}
	if repo.upserts != 2 {
		t.Errorf("upserts = %d, want 2", repo.upserts)
	}
}

func TestGetEmailsServesFromCacheWithoutRefresh(t *testing.T) {
	repo := newMockCacheRepo()
	repo.entries["m1"] = processedEntry("m1", "Venue quote")
	repo.entries["m2"] = processedEntry("m2", "Florist availability")
	provider := &mockProvider{}
	summarizer := &mockSummarizer{}
	uc := newTestUsecase(repo, provider, summarizer, &mockTaskRecorder{})

	entries, cached, err := uc.GetEmails(context.Background(), "token", 2, false)
	if err != nil {
		t.Fatalf("GetEmails: %v", err)
	}
	if !cached {
		t.Error("cached = false, want cache hit")
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d", len(entries))
	}
	if provider.calls != 0 {
		t.Errorf("mailbox fetched %d times on a full cache", provider.calls)
	}
}

func TestGetEmailsServesPartialCacheWithoutRefresh(t *testing.T) {
	repo := newMockCacheRepo()
	repo.entries["m1"] = processedEntry("m1", "Venue quote")
	provider := &mockProvider{messages: []*emaildomain.Message{
		msg("m1", "Venue quote", time.Hour),
		msg("m2", "Florist availability", 2*time.Hour),
	}}
	summarizer := &mockSummarizer{}
	uc := newTestUsecase(repo, provider, summarizer, &mockTaskRecorder{})

	// One cached row against a limit of five still counts as a cache hit.
	entries, cached, err := uc.GetEmails(context.Background(), "token", 5, false)
	if err != nil {
		t.Fatalf("GetEmails: %v", err)
	}
	if !cached {
		t.Error("cached = false, want any non-empty cache served")
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want the single cached row", len(entries))
	}
	if provider.calls != 0 {
		t.Errorf("mailbox fetched %d times on a non-empty cache", provider.calls)
	}
	if summarizer.summarizeCount() != 0 {
		t.Errorf("summarize calls = %d, want 0", summarizer.summarizeCount())
	}
}

func TestGetEmailsRefreshNeverResummarizesProcessed(t *testing.T) {
	repo := newMockCacheRepo()
	repo.entries["m1"] = processedEntry("m1", "Venue quote")
	provider := &mockProvider{messages: []*emaildomain.Message{
		msg("m1", "Venue quote", time.Hour),
		msg("m2", "New inquiry", time.Minute),
	}}
	summarizer := &mockSummarizer{}
	uc := newTestUsecase(repo, provider, summarizer, &mockTaskRecorder{})

	entries, cached, err := uc.GetEmails(context.Background(), "token", 5, true)
	if err != nil {
		t.Fatalf("GetEmails: %v", err)
	}
	if cached {
		t.Error("cached = true on refresh")
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (refresh re-lists)", provider.calls)
	}
	if summarizer.summarizeCount() != 1 {
		t.Fatalf("summarize calls = %d, want 1 (only the new message)", summarizer.summarizeCount())
	}
	if summarizer.summarized[0] != "New inquiry" {
		t.Errorf("summarized %q, want the unprocessed message", summarizer.summarized[0])
	}

	// The processed row is returned verbatim
	var cachedRow *emaildomain.EmailCache
	for _, e := range entries {
		if e.EmailID == "m1" {
			cachedRow = e
		}
	}
	if cachedRow == nil || cachedRow.Summary != "cached summary" {
		t.Errorf("processed entry not served verbatim: %+v", cachedRow)
	}
}

// gatedSummarizer blocks inside SummarizeEmail until released, so a test can
// hold one summarization open while a second request arrives.
type gatedSummarizer struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (s *gatedSummarizer) SummarizeEmail(_ context.Context, _, _, _ string) ai.EmailSummary {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	s.started <- struct{}{}
	<-s.release
	return ai.EmailSummary{
		Summary:     "shared summary",
		ActionItems: []string{},
		Priority:    emaildomain.PriorityLow,
		Category:    emaildomain.CategoryGeneral,
	}
}

func (s *gatedSummarizer) ExtractTasks(_ context.Context, _ []ai.EmailDescriptor) []ai.TaskExtraction {
	return []ai.TaskExtraction{}
}

func (s *gatedSummarizer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestConcurrentRequestsShareOneSummarization(t *testing.T) {
	repo := newMockCacheRepo()
	provider := &mockProvider{messages: []*emaildomain.Message{
		msg("m1", "Venue quote", time.Hour),
	}}
	summarizer := &gatedSummarizer{
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	uc := newTestUsecase(repo, provider, summarizer, &mockTaskRecorder{})

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := uc.GetEmails(context.Background(), "token", 5, true)
			errs <- err
		}()
	}

	// Hold the first summarization open until the second request has had
	// time to reach the same message id, then let it finish.
	<-summarizer.started
	time.Sleep(50 * time.Millisecond)
	close(summarizer.release)
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("GetEmails: %v", err)
		}
	}

	if got := summarizer.callCount(); got != 1 {
		t.Errorf("summarize calls = %d, want 1 shared across concurrent requests", got)
	}
}

func TestGetEmailsFetchFailurePropagates(t *testing.T) {
	repo := newMockCacheRepo()
	provider := &mockProvider{err: errors.New("gmail unavailable")}
	uc := newTestUsecase(repo, provider, &mockSummarizer{}, &mockTaskRecorder{})

	if _, _, err := uc.GetEmails(context.Background(), "token", 5, false); err == nil {
		t.Fatal("expected error when mailbox fetch fails")
	}
}

// --- ExtractTasks ---

func TestExtractTasksRecordsResults(t *testing.T) {
	repo := newMockCacheRepo()
	repo.entries["m1"] = processedEntry("m1", "Venue quote")
	summarizer := &mockSummarizer{extractions: []ai.TaskExtraction{
		{Title: "Pay venue deposit", Priority: "high", Source: "Venue quote"},
		{Title: "Reply to florist", Priority: "medium", Source: "Florist email"},
	}}
	tasks := &mockTaskRecorder{}
	uc := newTestUsecase(repo, &mockProvider{}, summarizer, tasks)

	created, err := uc.ExtractTasks(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("ExtractTasks: %v", err)
	}
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}
	if len(tasks.recorded) != 2 {
		t.Errorf("recorded = %v", tasks.recorded)
	}
}

func TestExtractTasksEmptyCache(t *testing.T) {
	uc := newTestUsecase(newMockCacheRepo(), &mockProvider{}, &mockSummarizer{}, &mockTaskRecorder{})

	created, err := uc.ExtractTasks(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("ExtractTasks: %v", err)
	}
	if created != 0 {
		t.Errorf("created = %d, want 0", created)
	}
}

func TestExtractTasksSkipsFailedRecords(t *testing.T) {
	repo := newMockCacheRepo()
	repo.entries["m1"] = processedEntry("m1", "Venue quote")
	summarizer := &mockSummarizer{extractions: []ai.TaskExtraction{
		{Title: "Pay venue deposit", Priority: "high"},
	}}
	tasks := &mockTaskRecorder{err: errors.New("db down")}
	uc := newTestUsecase(repo, &mockProvider{}, summarizer, tasks)

	created, err := uc.ExtractTasks(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("ExtractTasks: %v", err)
	}
	if created != 0 {
		t.Errorf("created = %d, want 0 when every record fails", created)
	}
}
