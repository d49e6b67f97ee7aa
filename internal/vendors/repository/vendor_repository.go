package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-planner-backend/internal/vendors/domain"
)

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	// Create creates a new vendor
	Create(vendor *domain.Vendor) error
	// FindByID finds a vendor by ID, including its question answers
	FindByID(id string) (*domain.Vendor, error)
	// FindByUserID finds vendors for a user, optionally filtered by type
	// and status, newest activity first
	FindByUserID(userID string, vendorType, status string) ([]*domain.Vendor, error)
	// Update updates an existing vendor
	Update(vendor *domain.Vendor) error
	// Delete deletes a vendor and its question answers
	Delete(id string) error
	// UpsertAnswer inserts or replaces the answer to one question
	UpsertAnswer(answer *domain.QuestionAnswer) error
	// CountBooked counts a user's booked vendors
	CountBooked(userID string) (int64, error)
}

// gormVendorRepository implements VendorRepository using GORM
type gormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GORM-based VendorRepository
func NewGormVendorRepository(db *gorm.DB) VendorRepository {
	return &gormVendorRepository{db: db}
}

func (r *gormVendorRepository) Create(vendor *domain.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = time.Now()
	return r.db.Create(vendor).Error
}

func (r *gormVendorRepository) FindByID(id string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.Preload("QuestionAnswers").Where("id = ?", id).First(&vendor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *gormVendorRepository) FindByUserID(userID string, vendorType, status string) ([]*domain.Vendor, error) {
	var vendors []*domain.Vendor

	query := r.db.Where("user_id = ?", userID)
	if vendorType != "" {
		query = query.Where("type = ?", vendorType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("updated_at DESC").Find(&vendors).Error
	return vendors, err
}

func (r *gormVendorRepository) Update(vendor *domain.Vendor) error {
	vendor.UpdatedAt = time.Now()
	return r.db.Omit("QuestionAnswers").Save(vendor).Error
}

func (r *gormVendorRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.QuestionAnswer{}, "vendor_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Vendor{}, "id = ?", id).Error
	})
}

func (r *gormVendorRepository) UpsertAnswer(answer *domain.QuestionAnswer) error {
	if answer.ID == "" {
		answer.ID = uuid.New().String()
	}
	answer.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
	}).Create(answer).Error
}

func (r *gormVendorRepository) CountBooked(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Vendor{}).
		Where("user_id = ? AND status = ?", userID, domain.StatusBooked).
		Count(&count).Error
	return count, err
}
