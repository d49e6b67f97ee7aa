package usecase

import (
	"errors"
	"testing"

	"wedding-planner-backend/internal/vendors/domain"
)

type mockVendorRepo struct {
	vendors map[string]*domain.Vendor
	answers []*domain.QuestionAnswer
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{vendors: make(map[string]*domain.Vendor)}
}

func (m *mockVendorRepo) Create(vendor *domain.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = "vendor-" + vendor.Name
	}
	m.vendors[vendor.ID] = vendor
	return nil
}

func (m *mockVendorRepo) FindByID(id string) (*domain.Vendor, error) {
	return m.vendors[id], nil
}

func (m *mockVendorRepo) FindByUserID(userID string, vendorType, status string) ([]*domain.Vendor, error) {
	var out []*domain.Vendor
	for _, v := range m.vendors {
		if v.UserID != userID {
			continue
		}
		if vendorType != "" && string(v.Type) != vendorType {
			continue
		}
		if status != "" && string(v.Status) != status {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *mockVendorRepo) Update(vendor *domain.Vendor) error {
	m.vendors[vendor.ID] = vendor
	return nil
}

func (m *mockVendorRepo) Delete(id string) error {
	delete(m.vendors, id)
	return nil
}

func (m *mockVendorRepo) UpsertAnswer(answer *domain.QuestionAnswer) error {
	m.answers = append(m.answers, answer)
	return nil
}

func (m *mockVendorRepo) CountBooked(userID string) (int64, error) {
	var count int64
	for _, v := range m.vendors {
		if v.UserID == userID && v.Status == domain.StatusBooked {
			count++
		}
	}
	return count, nil
}

func seedVendor(repo *mockVendorRepo, userID, name string) *domain.Vendor {
	vendor := &domain.Vendor{
		ID:     "vendor-" + name,
		UserID: userID,
		Name:   name,
		Type:   domain.TypeVenue,
		Status: domain.StatusResearching,
	}
	repo.vendors[vendor.ID] = vendor
	return vendor
}

func TestCreateVendorRejectsUnknownType(t *testing.T) {
	uc := NewVendorUsecase(newMockVendorRepo())

	_, err := uc.CreateVendor("user-1", CreateVendorRequest{Name: "Someone", Type: "plumber"})
	if err == nil {
		t.Fatal("expected error for unknown vendor type")
	}
}

func TestCreateVendorStartsResearching(t *testing.T) {
	repo := newMockVendorRepo()
	uc := NewVendorUsecase(repo)

	vendor, err := uc.CreateVendor("user-1", CreateVendorRequest{Name: "The Barn", Type: "venue"})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}
	if vendor.Status != domain.StatusResearching {
		t.Errorf("status = %q, want researching", vendor.Status)
	}
	if vendor.Type != domain.TypeVenue {
		t.Errorf("type = %q", vendor.Type)
	}
}

func TestGetVendorByIDOwnership(t *testing.T) {
	repo := newMockVendorRepo()
	theirs := seedVendor(repo, "user-2", "Their Venue")
	uc := NewVendorUsecase(repo)

	_, err := uc.GetVendorByID("user-1", theirs.ID)
	if !errors.Is(err, domain.ErrVendorNotFound) {
		t.Errorf("err = %v, want ErrVendorNotFound for someone else's vendor", err)
	}

	_, err = uc.GetVendorByID("user-1", "missing")
	if !errors.Is(err, domain.ErrVendorNotFound) {
		t.Errorf("err = %v, want ErrVendorNotFound for a missing vendor", err)
	}
}

func TestUpdateVendorParsesStatus(t *testing.T) {
	repo := newMockVendorRepo()
	vendor := seedVendor(repo, "user-1", "The Barn")
	uc := NewVendorUsecase(repo)

	booked := "booked"
	updated, err := uc.UpdateVendor("user-1", vendor.ID, UpdateVendorRequest{Status: &booked})
	if err != nil {
		t.Fatalf("UpdateVendor: %v", err)
	}
	if updated.Status != domain.StatusBooked {
		t.Errorf("status = %q", updated.Status)
	}

	bogus := "ghosted"
	updated, err = uc.UpdateVendor("user-1", vendor.ID, UpdateVendorRequest{Status: &bogus})
	if err != nil {
		t.Fatalf("UpdateVendor: %v", err)
	}
	if updated.Status != domain.StatusResearching {
		t.Errorf("status = %q, want researching for unknown input", updated.Status)
	}
}

func TestUpdateVendorRejectsUnknownType(t *testing.T) {
	repo := newMockVendorRepo()
	vendor := seedVendor(repo, "user-1", "The Barn")
	uc := NewVendorUsecase(repo)

	bogus := "plumber"
	if _, err := uc.UpdateVendor("user-1", vendor.ID, UpdateVendorRequest{Type: &bogus}); err == nil {
		t.Fatal("expected error for unknown vendor type")
	}
}

func TestAnswerQuestion(t *testing.T) {
	repo := newMockVendorRepo()
	vendor := seedVendor(repo, "user-1", "The Barn")
	uc := NewVendorUsecase(repo)

	qa, err := uc.AnswerQuestion("user-1", vendor.ID, "venue-1", "150 guests")
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	if qa.VendorID != vendor.ID || qa.Answer != "150 guests" {
		t.Errorf("answer = %+v", qa)
	}

	if _, err := uc.AnswerQuestion("user-1", vendor.ID, "", "orphan"); err == nil {
		t.Error("expected error for empty question id")
	}

	if _, err := uc.AnswerQuestion("user-2", vendor.ID, "venue-1", "nope"); !errors.Is(err, domain.ErrVendorNotFound) {
		t.Errorf("err = %v, want ErrVendorNotFound for another user", err)
	}
}

func TestGetQuestionsIncludesUniversal(t *testing.T) {
	uc := NewVendorUsecase(newMockVendorRepo())

	questions, err := uc.GetQuestions("venue")
	if err != nil {
		t.Fatalf("GetQuestions: %v", err)
	}
	universal := len(domain.QuestionsForType(domain.TypeVenue)) - len(questions)
	if universal != 0 {
		t.Errorf("questions = %d", len(questions))
	}

	ids := make(map[string]bool)
	for _, q := range questions {
		ids[q.ID] = true
	}
	if !ids["u1"] {
		t.Error("universal questions missing from the list")
	}

	if _, err := uc.GetQuestions("plumber"); err == nil {
		t.Error("expected error for unknown vendor type")
	}
}

func TestCountBooked(t *testing.T) {
	repo := newMockVendorRepo()
	booked := seedVendor(repo, "user-1", "Booked Venue")
	booked.Status = domain.StatusBooked
	seedVendor(repo, "user-1", "Researching Venue")
	uc := NewVendorUsecase(repo)

	count, err := uc.CountBooked("user-1")
	if err != nil {
		t.Fatalf("CountBooked: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d", count)
	}
}
