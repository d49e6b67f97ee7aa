package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wedding-planner-backend/internal/task/domain"
)

func setupTestDB(t *testing.T) TaskRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Task{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM tasks")
	})
	return NewGormTaskRepository(db)
}

func createTask(t *testing.T, repo TaskRepository, task *domain.Task) *domain.Task {
	t.Helper()
	if task.UserID == "" {
		task.UserID = "user-1"
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	require.NoError(t, repo.Create(task))
	return task
}

func days(n int) *time.Time {
	t := time.Now().Add(time.Duration(n) * 24 * time.Hour)
	return &t
}

func TestFindByUserIDOrdering(t *testing.T) {
	repo := setupTestDB(t)

	noDue := createTask(t, repo, &domain.Task{Title: "medium no due", Priority: domain.PriorityMedium})
	lowSoon := createTask(t, repo, &domain.Task{Title: "low due soon", Priority: domain.PriorityLow, DueDate: days(1)})
	highLate := createTask(t, repo, &domain.Task{Title: "high due late", Priority: domain.PriorityHigh, DueDate: days(20)})
	highSoon := createTask(t, repo, &domain.Task{Title: "high due soon", Priority: domain.PriorityHigh, DueDate: days(2)})

	tasks, total, err := repo.FindByUserID("user-1", false, 50, 0)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, tasks, 4)

	// High priority first ordered by due date, then medium, then low.
	require.Equal(t, highSoon.ID, tasks[0].ID)
	require.Equal(t, highLate.ID, tasks[1].ID)
	require.Equal(t, noDue.ID, tasks[2].ID, "medium outranks low even without a due date")
	require.Equal(t, lowSoon.ID, tasks[3].ID)
}

func TestFindByUserIDExcludesCompletedByDefault(t *testing.T) {
	repo := setupTestDB(t)

	open := createTask(t, repo, &domain.Task{Title: "open"})
	done := createTask(t, repo, &domain.Task{Title: "done"})
	done.Completed = true
	require.NoError(t, repo.Update(done))

	tasks, total, err := repo.FindByUserID("user-1", false, 50, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, open.ID, tasks[0].ID)

	tasks, total, err = repo.FindByUserID("user-1", true, 50, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, tasks, 2)
}

func TestFindUpcomingWindow(t *testing.T) {
	repo := setupTestDB(t)

	dueSoon := createTask(t, repo, &domain.Task{Title: "due in 10 days", DueDate: days(10)})
	noDue := createTask(t, repo, &domain.Task{Title: "no due date"})
	createTask(t, repo, &domain.Task{Title: "due in 45 days", DueDate: days(45)})

	completed := createTask(t, repo, &domain.Task{Title: "completed", DueDate: days(5)})
	completed.Completed = true
	require.NoError(t, repo.Update(completed))

	snoozed := createTask(t, repo, &domain.Task{Title: "snoozed", DueDate: days(5)})
	snoozed.SnoozedUntil = days(3)
	require.NoError(t, repo.Update(snoozed))

	tasks, err := repo.FindUpcoming("user-1")
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, task := range tasks {
		ids[task.ID] = true
	}
	require.True(t, ids[dueSoon.ID], "task due within the window is upcoming")
	require.True(t, ids[noDue.ID], "task without a due date is upcoming")
	require.Len(t, tasks, 2, "far-future, completed and snoozed tasks are excluded")

	count, err := repo.CountUpcoming("user-1")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestFindUpcomingScopedToUser(t *testing.T) {
	repo := setupTestDB(t)

	createTask(t, repo, &domain.Task{Title: "mine", UserID: "user-1"})
	createTask(t, repo, &domain.Task{Title: "theirs", UserID: "user-2"})

	tasks, err := repo.FindUpcoming("user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "mine", tasks[0].Title)
}

func TestDelete(t *testing.T) {
	repo := setupTestDB(t)

	task := createTask(t, repo, &domain.Task{Title: "to delete"})
	require.NoError(t, repo.Delete(task.ID))

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}
