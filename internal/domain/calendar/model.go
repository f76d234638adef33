package calendar

import "time"

// Event is a dated plan the wardrobe assistant can dress for.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime,omitempty"`
	Occasion  string    `json:"occasion,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRequest is the payload accepted when adding an event.
type CreateRequest struct {
	Title     string `json:"title" validate:"required,max=120"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"omitempty,datetime=15:04"`
	Occasion  string `json:"occasion" validate:"max=40"`
	Notes     string `json:"notes" validate:"max=500"`
}

// Filter restricts List to an inclusive date range. Empty bounds are open.
type Filter struct {
	From string
	To   string
}
