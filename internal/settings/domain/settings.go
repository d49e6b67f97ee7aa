package domain

import "time"

// Defaults used before the couple has saved anything.
const (
	DefaultWeddingDate  = "2027-06-21"
	DefaultPartner1Name = "Jared"
	DefaultPartner2Name = "Charlee"
)

// Settings holds the couple's wedding details, one row per user
type Settings struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"uniqueIndex;not null"`
	WeddingDate  *time.Time `json:"-"`
	Partner1Name string     `json:"partner1_name"`
	Partner2Name string     `json:"partner2_name"`
	WeddingEmail string     `json:"wedding_email,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Settings) TableName() string {
	return "settings"
}
