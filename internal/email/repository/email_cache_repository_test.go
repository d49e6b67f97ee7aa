package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	emaildomain "wedding-planner-backend/internal/email/domain"
)

func setupTestDB(t *testing.T) EmailCacheRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&emaildomain.EmailCache{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM email_cache")
	})
	return NewEmailCacheRepository(db)
}

func entry(emailID string, age time.Duration) *emaildomain.EmailCache {
	now := time.Now()
	e := &emaildomain.EmailCache{
		ID:          uuid.New().String(),
		EmailID:     emailID,
		Subject:     "subject " + emailID,
		Date:        now.Add(-age),
		Summary:     "summary " + emailID,
		ProcessedAt: &now,
	}
	e.SetActionItems([]string{"item"})
	return e
}

func TestUpsertIsIdempotentPerEmailID(t *testing.T) {
	repo := setupTestDB(t)

	first := entry("m1", time.Hour)
	require.NoError(t, repo.Upsert(first))

	// Second write for the same message id updates in place.
	second := entry("m1", time.Hour)
	second.Summary = "updated summary"
	require.NoError(t, repo.Upsert(second))

	rows, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	found, err := repo.FindByEmailIDs([]string{"m1"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "updated summary", found["m1"].Summary)
	require.Equal(t, first.ID, found["m1"].ID, "row identity survives the upsert")
}

func TestFindByEmailIDs(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.Upsert(entry("m1", time.Hour)))
	require.NoError(t, repo.Upsert(entry("m2", 2*time.Hour)))

	found, err := repo.FindByEmailIDs([]string{"m1", "m3"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Contains(t, found, "m1")

	empty, err := repo.FindByEmailIDs(nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestListRecentOrdersByDateDesc(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.Upsert(entry("old", 48*time.Hour)))
	require.NoError(t, repo.Upsert(entry("newest", time.Minute)))
	require.NoError(t, repo.Upsert(entry("middle", time.Hour)))

	entries, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "newest", entries[0].EmailID)
	require.Equal(t, "middle", entries[1].EmailID)
}

func TestActionItemsRoundTrip(t *testing.T) {
	repo := setupTestDB(t)

	e := entry("m1", time.Hour)
	e.SetActionItems([]string{"Pay deposit", "Confirm headcount"})
	require.NoError(t, repo.Upsert(e))

	found, err := repo.FindByEmailIDs([]string{"m1"})
	require.NoError(t, err)
	require.Equal(t, []string{"Pay deposit", "Confirm headcount"}, found["m1"].ActionItemList())
}
