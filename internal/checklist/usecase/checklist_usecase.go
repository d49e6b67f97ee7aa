package usecase

import (
	"time"

	"wedding-planner-backend/internal/checklist/domain"
	"wedding-planner-backend/internal/checklist/repository"
)

// TaskCounter exposes the task stats the dashboard needs. Implemented by the
// task usecase.
type TaskCounter interface {
	CountUpcoming(userID string) (int64, error)
}

// VendorCounter exposes the vendor stats the dashboard needs. Implemented by
// the vendor usecase.
type VendorCounter interface {
	CountBooked(userID string) (int64, error)
}

// ProgressEntry is the per-item progress returned alongside the checklist
type ProgressEntry struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Stats summarizes planning progress for the dashboard
type Stats struct {
	TotalTasks        int   `json:"total_tasks"`
	CompletedTasks    int64 `json:"completed_tasks"`
	UpcomingDeadlines int64 `json:"upcoming_deadlines"`
	VendorsBooked     int64 `json:"vendors_booked"`
}

// ChecklistUsecase defines the interface for checklist business logic
type ChecklistUsecase interface {
	// GetChecklist returns the static checklist and the user's progress map
	GetChecklist(userID string) ([]domain.Category, map[string]ProgressEntry, error)
	// SetProgress records completion state and notes for one item
	SetProgress(userID, itemID string, completed bool, notes string) (*domain.Progress, error)
	// GetStats summarizes checklist, task, and vendor progress
	GetStats(userID string) (*Stats, error)
}

// checklistUsecase implements ChecklistUsecase interface
type checklistUsecase struct {
	checklistRepo repository.ChecklistRepository
	tasks         TaskCounter
	vendors       VendorCounter
}

// NewChecklistUsecase creates a new instance of checklistUsecase
func NewChecklistUsecase(checklistRepo repository.ChecklistRepository, tasks TaskCounter, vendors VendorCounter) ChecklistUsecase {
	return &checklistUsecase{
		checklistRepo: checklistRepo,
		tasks:         tasks,
		vendors:       vendors,
	}
}

func (u *checklistUsecase) GetChecklist(userID string) ([]domain.Category, map[string]ProgressEntry, error) {
	rows, err := u.checklistRepo.FindProgress(userID)
	if err != nil {
		return nil, nil, err
	}

	progress := make(map[string]ProgressEntry, len(rows))
	for _, row := range rows {
		progress[row.ItemID] = ProgressEntry{
			Completed:   row.Completed,
			CompletedAt: row.CompletedAt,
			Notes:       row.Notes,
		}
	}

	return domain.DefaultChecklist, progress, nil
}

// SetProgress records completion state for one item. Item ids outside the
// built-in checklist are rejected.
func (u *checklistUsecase) SetProgress(userID, itemID string, completed bool, notes string) (*domain.Progress, error) {
	if _, ok := domain.ItemByID(itemID); !ok {
		return nil, domain.ErrUnknownItem
	}

	progress := &domain.Progress{
		UserID:    userID,
		ItemID:    itemID,
		Completed: completed,
		Notes:     notes,
	}
	if completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := u.checklistRepo.UpsertProgress(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (u *checklistUsecase) GetStats(userID string) (*Stats, error) {
	completed, err := u.checklistRepo.CountCompleted(userID)
	if err != nil {
		return nil, err
	}

	upcoming, err := u.tasks.CountUpcoming(userID)
	if err != nil {
		return nil, err
	}

	booked, err := u.vendors.CountBooked(userID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalTasks:        len(domain.AllItems()),
		CompletedTasks:    completed,
		UpcomingDeadlines: upcoming,
		VendorsBooked:     booked,
	}, nil
}
