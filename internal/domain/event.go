package domain

import "time"

type Event struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Category     Category   `json:"category"`
	LocationName string     `json:"location_name"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	ImageURL     *string    `json:"image_url"`
	WebsiteURL   *string    `json:"website_url"`
	ContactInfo  *string    `json:"contact_info"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EventRecord is the writable part of an Event. The category is referenced
// by id; the read path joins it back into Event.Category.
type EventRecord struct {
	Title        string
	Description  *string
	CategoryID   string
	LocationName string
	Latitude     float64
	Longitude    float64
	StartDate    time.Time
	EndDate      *time.Time
	ImageURL     *string
	WebsiteURL   *string
	ContactInfo  *string
}

func (e Event) Record() EventRecord {
	return EventRecord{
		Title:        e.Title,
		Description:  e.Description,
		CategoryID:   e.Category.ID,
		LocationName: e.LocationName,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		ImageURL:     e.ImageURL,
		WebsiteURL:   e.WebsiteURL,
		ContactInfo:  e.ContactInfo,
	}
}

// EventQuery is the server-side form of EventFilters: the date range is
// already resolved to a window on start_date.
type EventQuery struct {
	CategorySlug string
	Search       string
	StartsFrom   *time.Time
	StartsBefore *time.Time
}

type DashboardStats struct {
	TotalEvents int `json:"total_events"`
	Categories  int `json:"categories"`
	ThisMonth   int `json:"this_month"`
}
