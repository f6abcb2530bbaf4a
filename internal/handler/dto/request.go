package dto

type EventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  *string  `json:"description"`
	CategoryID   string   `json:"category_id" binding:"required,uuid"`
	LocationName string   `json:"location_name" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      *string  `json:"end_date"`
	ImageURL     *string  `json:"image_url"`
	WebsiteURL   *string  `json:"website_url"`
	ContactInfo  *string  `json:"contact_info"`
}

type CategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Slug  string  `json:"slug"`
	Icon  *string `json:"icon"`
	Color string  `json:"color"`
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user moderator admin"`
}

// EventQuery binds the public list filters from the query string.
type EventQuery struct {
	Category  string `form:"category"`
	Search    string `form:"search"`
	DateRange string `form:"dateRange"`
}
