package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	emaildomain "wedding-planner-backend/internal/email/domain"
)

// EmailCacheRepository defines the interface for cached email summary operations
type EmailCacheRepository interface {
	// FindByEmailIDs retrieves cached rows for a set of upstream message ids
	FindByEmailIDs(emailIDs []string) (map[string]*emaildomain.EmailCache, error)
	// ListRecent retrieves the newest cached rows, ordered by date descending
	ListRecent(limit int) ([]*emaildomain.EmailCache, error)
	// Upsert inserts a row or updates the existing row with the same email id
	Upsert(entry *emaildomain.EmailCache) error
}

// emailCacheRepository implements EmailCacheRepository interface
type emailCacheRepository struct {
	db *gorm.DB
}

// NewEmailCacheRepository creates a new instance of emailCacheRepository
func NewEmailCacheRepository(db *gorm.DB) EmailCacheRepository {
	return &emailCacheRepository{
		db: db,
	}
}

// FindByEmailIDs retrieves cached rows for a set of upstream message ids.
// Returns a map of emailID -> row; missing ids are simply absent.
func (r *emailCacheRepository) FindByEmailIDs(emailIDs []string) (map[string]*emaildomain.EmailCache, error) {
	result := make(map[string]*emaildomain.EmailCache, len(emailIDs))
	if len(emailIDs) == 0 {
		return result, nil
	}

	var entries []*emaildomain.EmailCache
	if err := r.db.Where("email_id IN ?", emailIDs).Find(&entries).Error; err != nil {
		return nil, err
	}

	for _, e := range entries {
		result[e.EmailID] = e
	}
	return result, nil
}

// ListRecent retrieves the newest cached rows, ordered by date descending
func (r *emailCacheRepository) ListRecent(limit int) ([]*emaildomain.EmailCache, error) {
	var entries []*emaildomain.EmailCache
	query := r.db.Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts a row or updates the existing row with the same email id
func (r *emailCacheRepository) Upsert(entry *emaildomain.EmailCache) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"summary", "action_items", "has_action_items",
			"priority", "category", "processed_at", "updated_at",
		}),
	}).Create(entry).Error
}
