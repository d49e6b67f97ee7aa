package usecase

import (
	"time"

	"github.com/google/uuid"

	"wedding-planner-backend/internal/task/domain"
	"wedding-planner-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID, title, description string, dueDate *string, priority string) (*domain.Task, error) {
	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    domain.ParsePriority(priority),
		Source:      domain.SourceManual,
	}

	if dueDate != nil && *dueDate != "" {
		if t, err := parseDate(*dueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTaskByID returns the task only if it belongs to userID. A task owned by
// someone else looks exactly like a missing one.
func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, includeCompleted bool, limit, offset int) ([]*domain.Task, int64, error) {
	return u.taskRepo.FindByUserID(userID, includeCompleted, limit, offset)
}

func (u *taskUsecase) GetUpcomingTasks(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindUpcoming(userID)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil && *updates.Title != "" {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		task.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else if t, err := parseDate(*updates.DueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) SetCompleted(userID, taskID string, completed bool) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if completed {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) SnoozeTask(userID, taskID string, until time.Time) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.SnoozedUntil = &until
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

// RecordExtractedTask persists a task produced by email extraction. Unknown
// priorities fall back to medium and the originating email id is kept so the
// dashboard can link back to the message.
func (u *taskUsecase) RecordExtractedTask(userID, title string, dueDate *time.Time, priority, sourceID string) error {
	task := &domain.Task{
		ID:       uuid.New().String(),
		UserID:   userID,
		Title:    title,
		DueDate:  dueDate,
		Priority: domain.ParsePriority(priority),
		Source:   domain.SourceEmail,
		SourceID: sourceID,
	}
	return u.taskRepo.Create(task)
}

func (u *taskUsecase) CountUpcoming(userID string) (int64, error) {
	return u.taskRepo.CountUpcoming(userID)
}

// parseDate accepts a date-only or full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
