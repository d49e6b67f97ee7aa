package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-planner-backend/internal/settings/domain"
)

// SettingsRepository defines the interface for settings data access
type SettingsRepository interface {
	// FindByUserID retrieves a user's settings, nil if never saved
	FindByUserID(userID string) (*domain.Settings, error)
	// Upsert inserts or replaces a user's settings
	Upsert(settings *domain.Settings) error
}

// gormSettingsRepository implements SettingsRepository using GORM
type gormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM-based SettingsRepository
func NewGormSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) FindByUserID(userID string) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *gormSettingsRepository) Upsert(settings *domain.Settings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	settings.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wedding_date", "partner1_name", "partner2_name", "wedding_email", "updated_at",
		}),
	}).Create(settings).Error
}
