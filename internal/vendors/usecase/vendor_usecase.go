package usecase

import (
	"errors"

	"wedding-planner-backend/internal/vendors/domain"
	"wedding-planner-backend/internal/vendors/repository"
)

// CreateVendorRequest carries the fields for a new vendor
type CreateVendorRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	Address    string `json:"address"`
	PriceRange string `json:"price_range"`
	Notes      string `json:"notes"`
}

// UpdateVendorRequest carries the fields that can be changed on a vendor.
// Nil pointers leave the field untouched.
type UpdateVendorRequest struct {
	Name       *string `json:"name,omitempty"`
	Type       *string `json:"type,omitempty"`
	Status     *string `json:"status,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Website    *string `json:"website,omitempty"`
	Address    *string `json:"address,omitempty"`
	PriceRange *string `json:"price_range,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Pros       *string `json:"pros,omitempty"`
	Cons       *string `json:"cons,omitempty"`
}

// VendorUsecase defines the interface for vendor business logic
type VendorUsecase interface {
	CreateVendor(userID string, req CreateVendorRequest) (*domain.Vendor, error)
	GetVendors(userID string, vendorType, status string) ([]*domain.Vendor, error)
	GetVendorByID(userID, vendorID string) (*domain.Vendor, error)
	UpdateVendor(userID, vendorID string, req UpdateVendorRequest) (*domain.Vendor, error)
	DeleteVendor(userID, vendorID string) error
	// AnswerQuestion records the answer to one interview question
	AnswerQuestion(userID, vendorID, questionID, answer string) (*domain.QuestionAnswer, error)
	// GetQuestions returns the interview questions for a vendor type
	GetQuestions(vendorType string) ([]domain.Question, error)
	// CountBooked counts booked vendors, for dashboard stats
	CountBooked(userID string) (int64, error)
}

// vendorUsecase implements VendorUsecase interface
type vendorUsecase struct {
	vendorRepo repository.VendorRepository
}

// NewVendorUsecase creates a new instance of vendorUsecase
func NewVendorUsecase(vendorRepo repository.VendorRepository) VendorUsecase {
	return &vendorUsecase{
		vendorRepo: vendorRepo,
	}
}

func (u *vendorUsecase) CreateVendor(userID string, req CreateVendorRequest) (*domain.Vendor, error) {
	vendorType := domain.VendorType(req.Type)
	if !domain.ValidType(vendorType) {
		return nil, errors.New("unknown vendor type")
	}

	vendor := &domain.Vendor{
		UserID:     userID,
		Name:       req.Name,
		Type:       vendorType,
		Status:     domain.StatusResearching,
		Email:      req.Email,
		Phone:      req.Phone,
		Website:    req.Website,
		Address:    req.Address,
		PriceRange: req.PriceRange,
		Notes:      req.Notes,
	}

	if err := u.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (u *vendorUsecase) GetVendors(userID string, vendorType, status string) ([]*domain.Vendor, error) {
	return u.vendorRepo.FindByUserID(userID, vendorType, status)
}

// GetVendorByID returns the vendor only if it belongs to userID.
func (u *vendorUsecase) GetVendorByID(userID, vendorID string) (*domain.Vendor, error) {
	vendor, err := u.vendorRepo.FindByID(vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.UserID != userID {
		return nil, domain.ErrVendorNotFound
	}
	return vendor, nil
}

func (u *vendorUsecase) UpdateVendor(userID, vendorID string, req UpdateVendorRequest) (*domain.Vendor, error) {
	vendor, err := u.GetVendorByID(userID, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		vendor.Name = *req.Name
	}
	if req.Type != nil {
		t := domain.VendorType(*req.Type)
		if !domain.ValidType(t) {
			return nil, errors.New("unknown vendor type")
		}
		vendor.Type = t
	}
	if req.Status != nil {
		vendor.Status = domain.ParseStatus(*req.Status)
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Website != nil {
		vendor.Website = *req.Website
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.PriceRange != nil {
		vendor.PriceRange = *req.PriceRange
	}
	if req.Rating != nil {
		vendor.Rating = req.Rating
	}
	if req.Notes != nil {
		vendor.Notes = *req.Notes
	}
	if req.Pros != nil {
		vendor.Pros = *req.Pros
	}
	if req.Cons != nil {
		vendor.Cons = *req.Cons
	}

	if err := u.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (u *vendorUsecase) DeleteVendor(userID, vendorID string) error {
	vendor, err := u.GetVendorByID(userID, vendorID)
	if err != nil {
		return err
	}
	return u.vendorRepo.Delete(vendor.ID)
}

func (u *vendorUsecase) AnswerQuestion(userID, vendorID, questionID, answer string) (*domain.QuestionAnswer, error) {
	vendor, err := u.GetVendorByID(userID, vendorID)
	if err != nil {
		return nil, err
	}
	if questionID == "" {
		return nil, errors.New("question id is required")
	}

	qa := &domain.QuestionAnswer{
		VendorID:   vendor.ID,
		QuestionID: questionID,
		Answer:     answer,
	}
	if err := u.vendorRepo.UpsertAnswer(qa); err != nil {
		return nil, err
	}
	return qa, nil
}

func (u *vendorUsecase) GetQuestions(vendorType string) ([]domain.Question, error) {
	t := domain.VendorType(vendorType)
	if !domain.ValidType(t) {
		return nil, errors.New("unknown vendor type")
	}
	return domain.QuestionsForType(t), nil
}

func (u *vendorUsecase) CountBooked(userID string) (int64, error) {
	return u.vendorRepo.CountBooked(userID)
}
