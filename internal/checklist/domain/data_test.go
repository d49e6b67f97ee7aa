package domain

import "testing"

func TestChecklistItemIDsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, category := range DefaultChecklist {
		for _, item := range category.Items {
			if prev, ok := seen[item.ID]; ok {
				t.Errorf("item id %q appears in both %q and %q", item.ID, prev, category.ID)
			}
			seen[item.ID] = category.ID
		}
	}
	if len(seen) != len(AllItems()) {
		t.Errorf("AllItems = %d, want %d", len(AllItems()), len(seen))
	}
}

func TestChecklistItemsCarryCategory(t *testing.T) {
	for _, item := range AllItems() {
		if item.Category == "" || item.Timeframe == "" {
			t.Errorf("item %q missing category/timeframe: %+v", item.ID, item)
		}
	}
}

func TestItemByID(t *testing.T) {
	item, ok := ItemByID("1")
	if !ok {
		t.Fatal("item 1 not found")
	}
	if item.Title != "Celebrate engagement" {
		t.Errorf("title = %q", item.Title)
	}
	if item.Category != "18-months" {
		t.Errorf("category = %q", item.Category)
	}

	if _, ok := ItemByID("no-such-item"); ok {
		t.Error("unknown id resolved")
	}
}

func TestEveryCategoryHasItems(t *testing.T) {
	for _, category := range DefaultChecklist {
		if len(category.Items) == 0 {
			t.Errorf("category %q has no items", category.ID)
		}
	}
}
