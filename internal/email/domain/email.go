package domain

import "time"

// Priority represents email/task urgency
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority returns the matching priority or "low" for anything unknown.
// Summaries degrade to low urgency rather than failing on bad model output.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityLow
	}
}

// Category is the wedding-planning topic an email belongs to
type Category string

const (
	CategoryVenue           Category = "venue"
	CategoryCatering        Category = "catering"
	CategoryPhotography     Category = "photography"
	CategoryFlowers         Category = "flowers"
	CategoryMusic           Category = "music"
	CategoryAttire          Category = "attire"
	CategoryInvitations     Category = "invitations"
	CategoryGuestManagement Category = "guest_management"
	CategoryHoneymoon       Category = "honeymoon"
	CategoryBudget          Category = "budget"
	CategoryGeneral         Category = "general"
)

// ParseCategory returns the matching category or "general" for anything unknown.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryVenue, CategoryCatering, CategoryPhotography, CategoryFlowers,
		CategoryMusic, CategoryAttire, CategoryInvitations, CategoryGuestManagement,
		CategoryHoneymoon, CategoryBudget, CategoryGeneral:
		return Category(s)
	default:
		return CategoryGeneral
	}
}

// Message is a single fetched mailbox item with its decoded body.
// Messages are transient: only the derived summary is persisted.
type Message struct {
	ID       string    `json:"id"`
	ThreadID string    `json:"thread_id"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Date     time.Time `json:"date"`
	Snippet  string    `json:"snippet"`
	Body     string    `json:"body"`
}
