package usecase

import (
	"time"

	"wedding-planner-backend/internal/settings/domain"
	"wedding-planner-backend/internal/settings/repository"
)

// SettingsView is the API shape of the couple's settings. The wedding date
// is rendered as a bare date.
type SettingsView struct {
	WeddingDate  string `json:"wedding_date,omitempty"`
	Partner1Name string `json:"partner1_name"`
	Partner2Name string `json:"partner2_name"`
	WeddingEmail string `json:"wedding_email,omitempty"`
}

// UpdateSettingsRequest carries the fields to save. Empty names keep the
// defaults.
type UpdateSettingsRequest struct {
	WeddingDate  string `json:"wedding_date"`
	Partner1Name string `json:"partner1_name"`
	Partner2Name string `json:"partner2_name"`
	WeddingEmail string `json:"wedding_email"`
}

// SettingsUsecase defines the interface for settings business logic
type SettingsUsecase interface {
	// GetSettings returns the saved settings, or defaults if never saved
	GetSettings(userID string) (*SettingsView, error)
	// SaveSettings inserts or replaces the user's settings
	SaveSettings(userID string, req UpdateSettingsRequest) (*SettingsView, error)
}

// settingsUsecase implements SettingsUsecase interface
type settingsUsecase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUsecase creates a new instance of settingsUsecase
func NewSettingsUsecase(settingsRepo repository.SettingsRepository) SettingsUsecase {
	return &settingsUsecase{
		settingsRepo: settingsRepo,
	}
}

func defaultView() *SettingsView {
	return &SettingsView{
		WeddingDate:  domain.DefaultWeddingDate,
		Partner1Name: domain.DefaultPartner1Name,
		Partner2Name: domain.DefaultPartner2Name,
	}
}

func (u *settingsUsecase) GetSettings(userID string) (*SettingsView, error) {
	settings, err := u.settingsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return defaultView(), nil
	}

	view := &SettingsView{
		Partner1Name: settings.Partner1Name,
		Partner2Name: settings.Partner2Name,
		WeddingEmail: settings.WeddingEmail,
	}
	if settings.WeddingDate != nil {
		view.WeddingDate = settings.WeddingDate.Format("2006-01-02")
	}
	return view, nil
}

func (u *settingsUsecase) SaveSettings(userID string, req UpdateSettingsRequest) (*SettingsView, error) {
	settings := &domain.Settings{
		UserID:       userID,
		Partner1Name: req.Partner1Name,
		Partner2Name: req.Partner2Name,
		WeddingEmail: req.WeddingEmail,
	}
	if settings.Partner1Name == "" {
		settings.Partner1Name = domain.DefaultPartner1Name
	}
	if settings.Partner2Name == "" {
		settings.Partner2Name = domain.DefaultPartner2Name
	}
	if req.WeddingDate != "" {
		if t, err := time.Parse("2006-01-02", req.WeddingDate); err == nil {
			settings.WeddingDate = &t
		}
	}

	if err := u.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}

	return u.GetSettings(userID)
}
