package dto

import (
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

type CategoryResponse struct {
	ID    *string `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Icon  *string `json:"icon"`
	Color string  `json:"color"`
}

type EventResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  *string          `json:"description"`
	Category     CategoryResponse `json:"category"`
	LocationName string           `json:"location_name"`
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	StartDate    string           `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	ImageURL     *string          `json:"image_url"`
	WebsiteURL   *string          `json:"website_url"`
	ContactInfo  *string          `json:"contact_info"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type MeResponse struct {
	User    UserResponse    `json:"user"`
	Role    string          `json:"role"`
	Profile ProfileResponse `json:"profile"`
}

type StatsResponse struct {
	TotalEvents int `json:"total_events"`
	Categories  int `json:"categories"`
	ThisMonth   int `json:"this_month"`
}

type LatLngResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MapResponse struct {
	Center     LatLngResponse `json:"center"`
	Zoom       int            `json:"zoom"`
	SelectZoom int            `json:"select_zoom"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCategoryResponse(c domain.Category) CategoryResponse {
	resp := CategoryResponse{
		Name:  c.Name,
		Slug:  c.Slug,
		Icon:  c.Icon,
		Color: c.Color,
	}
	if !c.IsPlaceholder() {
		id := c.ID
		resp.ID = &id
	}
	return resp
}

func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, ToCategoryResponse(c))
	}
	return resp
}

func ToEventResponse(e domain.Event) EventResponse {
	resp := EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Category:     ToCategoryResponse(e.Category),
		LocationName: e.LocationName,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		StartDate:    e.StartDate.UTC().Format(time.RFC3339),
		ImageURL:     e.ImageURL,
		WebsiteURL:   e.WebsiteURL,
		ContactInfo:  e.ContactInfo,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if e.EndDate != nil {
		end := e.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}

func ToEventResponses(events []domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToSessionResponse(s domain.IssuedSession) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		User:      ToUserResponse(s.User),
	}
}

func ToProfileResponse(p domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func ToStatsResponse(s domain.DashboardStats) StatsResponse {
	return StatsResponse{
		TotalEvents: s.TotalEvents,
		Categories:  s.Categories,
		ThisMonth:   s.ThisMonth,
	}
}
