package domain

import (
	"errors"
	"time"
)

// ErrVendorNotFound is returned when a vendor does not exist or belongs to a
// different user.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorStatus tracks where a vendor is in the hiring pipeline
type VendorStatus string

const (
	StatusResearching VendorStatus = "researching"
	StatusContacted   VendorStatus = "contacted"
	StatusInterviewed VendorStatus = "interviewed"
	StatusBooked      VendorStatus = "booked"
	StatusRejected    VendorStatus = "rejected"
)

// ParseStatus normalizes a status string, defaulting to researching.
func ParseStatus(s string) VendorStatus {
	switch VendorStatus(s) {
	case StatusResearching, StatusContacted, StatusInterviewed, StatusBooked, StatusRejected:
		return VendorStatus(s)
	default:
		return StatusResearching
	}
}

// Vendor represents one candidate wedding vendor
type Vendor struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	UserID     string       `json:"user_id" gorm:"index;not null"`
	Name       string       `json:"name" gorm:"not null"`
	Type       VendorType   `json:"type" gorm:"not null"`
	Status     VendorStatus `json:"status" gorm:"default:researching"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Website    string       `json:"website,omitempty"`
	Address    string       `json:"address,omitempty"`
	PriceRange string       `json:"price_range,omitempty"`
	Rating     *int         `json:"rating,omitempty"`
	Notes      string       `json:"notes,omitempty" gorm:"type:text"`
	Pros       string       `json:"pros,omitempty" gorm:"type:text"`
	Cons       string       `json:"cons,omitempty" gorm:"type:text"`

	QuestionAnswers []QuestionAnswer `json:"question_answers,omitempty" gorm:"foreignKey:VendorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionAnswer stores the recorded answer to one interview question for
// one vendor. A vendor has at most one answer per question.
type QuestionAnswer struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	VendorID   string    `json:"vendor_id" gorm:"uniqueIndex:idx_vendor_question;not null"`
	QuestionID string    `json:"question_id" gorm:"uniqueIndex:idx_vendor_question;not null"`
	Answer     string    `json:"answer" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (QuestionAnswer) TableName() string {
	return "vendor_question_answers"
}
