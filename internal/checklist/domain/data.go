package domain

// DefaultChecklist is the built-in wedding planning checklist, grouped by
// how far out from the wedding each batch of work happens.
var DefaultChecklist = []Category{
	{
		ID:          "18-months",
		Name:        "18+ Months Out",
		Timeframe:   "18+ months",
		Description: "Where you are now! Time to celebrate and start planning.",
		Items: []Item{
			{ID: "1", Title: "Celebrate engagement", SortOrder: 1},
			{ID: "2", Title: "Have the budget conversation - determine total and who's contributing", SortOrder: 2},
			{ID: "3", Title: "Create dedicated wedding email", SortOrder: 3},
			{ID: "4", Title: "Create shared Google Drive/folder for contracts and inspiration", SortOrder: 4},
			{ID: "5", Title: "Build initial guest list to determine wedding size", SortOrder: 5},
			{ID: "6", Title: "Research and tour venues", SortOrder: 6},
			{ID: "7", Title: "Gather vendor inspiration", SortOrder: 7},
		},
	},
	{
		ID:          "12-14-months",
		Name:        "12-14 Months Out",
		Timeframe:   "12-14 months",
		Description: "Time to book major vendors and lock in the big decisions.",
		Items: []Item{
			{ID: "8", Title: "Book venue and lock in date", SortOrder: 1},
			{ID: "9", Title: "Hire wedding planner/coordinator (if desired)", SortOrder: 2},
			{ID: "10", Title: "Set up wedding website", SortOrder: 3},
			{ID: "11", Title: "Research and book photographer/videographer", SortOrder: 4},
			{ID: "12", Title: "Choose wedding party", SortOrder: 5},
			{ID: "13", Title: "Start dress/attire shopping (custom gowns need 6-9 months!)", SortOrder: 6},
			{ID: "14", Title: "Take engagement photos", SortOrder: 7},
			{ID: "15", Title: "Choose officiant", SortOrder: 8},
			{ID: "16", Title: "Consider pre-marital counseling", SortOrder: 9},
		},
	},
	{
		ID:          "10-11-months",
		Name:        "10-11 Months Out",
		Timeframe:   "10-11 months",
		Description: "Book more vendors and start planning the fun details.",
		Items: []Item{
			{ID: "17", Title: "Book caterer and schedule tastings", SortOrder: 1},
			{ID: "18", Title: "Book florist", SortOrder: 2},
			{ID: "19", Title: "Start honeymoon research", SortOrder: 3},
			{ID: "20", Title: "Book DJ/band", SortOrder: 4},
			{ID: "21", Title: "Arrange hotel room blocks for guests", SortOrder: 5},
			{ID: "22", Title: "Plan bachelor/bachelorette parties", SortOrder: 6},
		},
	},
	{
		ID:          "8-9-months",
		Name:        "8-9 Months Out",
		Timeframe:   "8-9 months",
		Description: "Send save-the-dates and finalize vendor bookings.",
		Items: []Item{
			{ID: "23", Title: "Send save-the-dates", SortOrder: 1},
			{ID: "24", Title: "Book additional vendors (videographer, photobooth, etc.)", SortOrder: 2},
			{ID: "25", Title: "Decide on wedding party attire", SortOrder: 3},
			{ID: "26", Title: "Research required permits (if outdoor/unique venue)", SortOrder: 4},
			{ID: "27", Title: "Create wedding party group chat", SortOrder: 5},
			{ID: "28", Title: "Book honeymoon flights/hotels", SortOrder: 6},
		},
	},
	{
		ID:          "6-7-months",
		Name:        "6-7 Months Out",
		Timeframe:   "6-7 months",
		Description: "Venue walkthroughs, invitations, and registry.",
		Items: []Item{
			{ID: "29", Title: "Do venue walkthrough with key vendors", SortOrder: 1},
			{ID: "30", Title: "Plan rehearsal dinner", SortOrder: 2},
			{ID: "31", Title: "Research marriage license requirements for your state", SortOrder: 3},
			{ID: "32", Title: "Order invitations", SortOrder: 4},
			{ID: "33", Title: "Schedule cake tastings", SortOrder: 5},
			{ID: "34", Title: "Finalize registry", SortOrder: 6},
			{ID: "35", Title: "Plan any DIY projects", SortOrder: 7},
			{ID: "36", Title: "Create weather backup plan (if outdoor)", SortOrder: 8},
		},
	},
	{
		ID:          "4-5-months",
		Name:        "4-5 Months Out",
		Timeframe:   "4-5 months",
		Description: "Fittings, rings, and confirming all the details.",
		Items: []Item{
			{ID: "37", Title: "Book hair and makeup artist", SortOrder: 1},
			{ID: "38", Title: "First dress fitting", SortOrder: 2},
			{ID: "39", Title: "Order wedding rings", SortOrder: 3},
			{ID: "40", Title: "Book rehearsal dinner venue", SortOrder: 4},
			{ID: "41", Title: "Arrange wedding day transportation", SortOrder: 5},
			{ID: "42", Title: "Purchase wedding party/parent gifts", SortOrder: 6},
			{ID: "43", Title: "Create shot list for photographer", SortOrder: 7},
			{ID: "44", Title: "Confirm all vendor contracts", SortOrder: 8},
		},
	},
	{
		ID:          "2-3-months",
		Name:        "2-3 Months Out",
		Timeframe:   "2-3 months",
		Description: "Mail invitations and finalize ceremony details.",
		Items: []Item{
			{ID: "45", Title: "Mail wedding invitations", SortOrder: 1},
			{ID: "46", Title: "Start writing vows", SortOrder: 2},
			{ID: "47", Title: "Create day-of timeline", SortOrder: 3},
			{ID: "48", Title: "Finalize ceremony details (readings, music)", SortOrder: 4},
			{ID: "49", Title: "Order welcome bags for out-of-town guests", SortOrder: 5},
			{ID: "50", Title: "Confirm honeymoon bookings and travel documents", SortOrder: 6},
			{ID: "51", Title: "Second dress fitting/alterations", SortOrder: 7},
			{ID: "52", Title: "Track RSVPs aggressively", SortOrder: 8},
		},
	},
	{
		ID:          "1-month",
		Name:        "1 Month Out",
		Timeframe:   "1 month",
		Description: "Final details and preparation.",
		Items: []Item{
			{ID: "53", Title: "Finalize seating chart", SortOrder: 1},
			{ID: "54", Title: "Obtain marriage license", SortOrder: 2},
			{ID: "55", Title: "Print programs, menus, place cards", SortOrder: 3},
			{ID: "56", Title: "Final dress fitting", SortOrder: 4},
			{ID: "57", Title: "Confirm all vendor arrival times", SortOrder: 5},
			{ID: "58", Title: "Create processional/recessional order", SortOrder: 6},
			{ID: "59", Title: "Break in wedding shoes", SortOrder: 7},
			{ID: "60", Title: "Prepare vendor payments and tip envelopes", SortOrder: 8},
		},
	},
	{
		ID:          "1-week",
		Name:        "1 Week Before",
		Timeframe:   "1 week",
		Description: "Final confirmations and packing.",
		Items: []Item{
			{ID: "61", Title: "Confirm final headcount with caterer", SortOrder: 1},
			{ID: "62", Title: "Pack for honeymoon", SortOrder: 2},
			{ID: "63", Title: "Prepare emergency kit (safety pins, stain remover, band-aids, etc.)", SortOrder: 3},
			{ID: "64", Title: "Gather all ceremony items in one box", SortOrder: 4},
			{ID: "65", Title: "Brief wedding party on schedule", SortOrder: 5},
			{ID: "66", Title: "Assign day-of point person for vendor questions", SortOrder: 6},
			{ID: "67", Title: "REST and hydrate!", SortOrder: 7},
		},
	},
	{
		ID:          "day-before",
		Name:        "Day Before",
		Timeframe:   "day before",
		Description: "Rehearsal and final preparations.",
		Items: []Item{
			{ID: "68", Title: "Wedding rehearsal", SortOrder: 1},
			{ID: "69", Title: "Confirm vendor delivery times", SortOrder: 2},
			{ID: "70", Title: "Prepare marriage license and vows in designated spot", SortOrder: 3},
			{ID: "71", Title: "Get a good night's sleep", SortOrder: 4},
		},
	},
	{
		ID:          "wedding-day",
		Name:        "Wedding Day",
		Timeframe:   "wedding day",
		Description: "The big day!",
		Items: []Item{
			{ID: "72", Title: "Eat breakfast!", SortOrder: 1},
			{ID: "73", Title: "Stay hydrated", SortOrder: 2},
			{ID: "74", Title: "Have snacks available for wedding party", SortOrder: 3},
			{ID: "75", Title: "Enjoy every moment", SortOrder: 4},
		},
	},
	{
		ID:          "after-wedding",
		Name:        "After Wedding",
		Timeframe:   "after wedding",
		Description: "Don't forget these important post-wedding tasks!",
		Items: []Item{
			{ID: "76", Title: "Send thank-you cards within 3 months", SortOrder: 1},
			{ID: "77", Title: "Return rentals", SortOrder: 2},
			{ID: "78", Title: "Settle final vendor payments", SortOrder: 3},
			{ID: "79", Title: "Update name on documents (if changing)", SortOrder: 4},
			{ID: "80", Title: "Order wedding album", SortOrder: 5},
			{ID: "81", Title: "Preserve dress (if desired)", SortOrder: 6},
			{ID: "82", Title: "Write reviews for great vendors", SortOrder: 7},
		},
	},
}

var itemIndex map[string]Item

func init() {
	// Stamp the parent category onto each item and build the id index.
	itemIndex = make(map[string]Item)
	for ci := range DefaultChecklist {
		cat := &DefaultChecklist[ci]
		for ii := range cat.Items {
			cat.Items[ii].Category = cat.ID
			cat.Items[ii].Timeframe = cat.Timeframe
			itemIndex[cat.Items[ii].ID] = cat.Items[ii]
		}
	}
}

// AllItems returns every checklist item across all categories.
func AllItems() []Item {
	var items []Item
	for _, cat := range DefaultChecklist {
		items = append(items, cat.Items...)
	}
	return items
}

// ItemByID looks up a checklist item by id.
func ItemByID(id string) (Item, bool) {
	item, ok := itemIndex[id]
	return item, ok
}
