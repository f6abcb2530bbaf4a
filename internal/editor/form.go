// Package editor maps persisted events to editable form state and back, and
// drives the admin dashboard.
package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

// TimeLayout is the minute-precision layout used by datetime-local inputs.
const TimeLayout = "2006-01-02T15:04"

// Default coordinates prefilled for a new event (Tartu town hall square).
const (
	DefaultLatitude  = 58.3806
	DefaultLongitude = 26.7251
)

type FormData struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryID   string `json:"category_id"`
	LocationName string `json:"location_name"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	ImageURL     string `json:"image_url"`
	WebsiteURL   string `json:"website_url"`
	ContactInfo  string `json:"contact_info"`
}

// FieldError names one rejected form field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError lists every rejected field. It unwraps to domain.ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NewForm returns the blank form shown for "add event".
func NewForm() FormData {
	return FormData{
		Latitude:  formatCoord(DefaultLatitude),
		Longitude: formatCoord(DefaultLongitude),
	}
}

// ToFormState projects e into editable fields. Timestamps are rendered in
// UTC and truncated to the minute.
func ToFormState(e domain.Event) FormData {
	f := FormData{
		Title:        e.Title,
		Description:  deref(e.Description),
		LocationName: e.LocationName,
		Latitude:     formatCoord(e.Latitude),
		Longitude:    formatCoord(e.Longitude),
		StartDate:    formatTime(e.StartDate),
		ImageURL:     deref(e.ImageURL),
		WebsiteURL:   deref(e.WebsiteURL),
		ContactInfo:  deref(e.ContactInfo),
	}
	if !e.Category.IsPlaceholder() {
		f.CategoryID = e.Category.ID
	}
	if e.EndDate != nil {
		f.EndDate = formatTime(*e.EndDate)
	}
	return f
}

// FromFormState validates f and builds the record to persist. Text fields are
// trimmed and empty optional fields become nil; with minute truncation of the
// dates these are the only lossy steps.
func FromFormState(f FormData) (domain.EventRecord, error) {
	var (
		rec  domain.EventRecord
		errs []FieldError
	)
	reject := func(field, reason string) {
		errs = append(errs, FieldError{Field: field, Reason: reason})
	}

	rec.Title = strings.TrimSpace(f.Title)
	if rec.Title == "" {
		reject("title", "is required")
	}
	rec.CategoryID = strings.TrimSpace(f.CategoryID)
	if rec.CategoryID == "" {
		reject("category_id", "is required")
	}
	rec.LocationName = strings.TrimSpace(f.LocationName)
	if rec.LocationName == "" {
		reject("location_name", "is required")
	}

	var err error
	if rec.Latitude, err = parseCoord(f.Latitude, 90); err != nil {
		reject("latitude", err.Error())
	}
	if rec.Longitude, err = parseCoord(f.Longitude, 180); err != nil {
		reject("longitude", err.Error())
	}

	if strings.TrimSpace(f.StartDate) == "" {
		reject("start_date", "is required")
	} else if rec.StartDate, err = parseTime(f.StartDate); err != nil {
		reject("start_date", "must look like "+TimeLayout)
	}
	if strings.TrimSpace(f.EndDate) != "" {
		end, err := parseTime(f.EndDate)
		switch {
		case err != nil:
			reject("end_date", "must look like "+TimeLayout)
		case !rec.StartDate.IsZero() && end.Before(rec.StartDate):
			reject("end_date", "must not be before start_date")
		default:
			rec.EndDate = &end
		}
	}

	rec.Description = optional(f.Description)
	rec.ImageURL = optional(f.ImageURL)
	rec.WebsiteURL = optional(f.WebsiteURL)
	rec.ContactInfo = optional(f.ContactInfo)

	if len(errs) > 0 {
		return domain.EventRecord{}, &ValidationError{Fields: errs}
	}
	return rec, nil
}

// NormalizeRecord trims the text fields the way FromFormState does and turns
// blank optional fields into nil. Every write path stores normalized records,
// so a stored event survives the form round trip.
func NormalizeRecord(r domain.EventRecord) domain.EventRecord {
	r.Title = strings.TrimSpace(r.Title)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.LocationName = strings.TrimSpace(r.LocationName)
	r.Description = optional(deref(r.Description))
	r.ImageURL = optional(deref(r.ImageURL))
	r.WebsiteURL = optional(deref(r.WebsiteURL))
	r.ContactInfo = optional(deref(r.ContactInfo))
	return r
}

// ValidateRecord applies the form rules to a record that did not come through
// a form, such as a JSON request body.
func ValidateRecord(r domain.EventRecord) error {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Reason: "is required"})
	}
	if strings.TrimSpace(r.CategoryID) == "" {
		errs = append(errs, FieldError{Field: "category_id", Reason: "is required"})
	}
	if strings.TrimSpace(r.LocationName) == "" {
		errs = append(errs, FieldError{Field: "location_name", Reason: "is required"})
	}
	if !validCoord(r.Latitude, 90) {
		errs = append(errs, FieldError{Field: "latitude", Reason: "must be between -90 and 90"})
	}
	if !validCoord(r.Longitude, 180) {
		errs = append(errs, FieldError{Field: "longitude", Reason: "must be between -180 and 180"})
	}
	if r.StartDate.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Reason: "is required"})
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		errs = append(errs, FieldError{Field: "end_date", Reason: "must not be before start_date"})
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func parseCoord(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !validCoord(v, limit) {
		return 0, fmt.Errorf("must be a number between %g and %g", -limit, limit)
	}
	return v, nil
}

func validCoord(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -limit && v <= limit
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, strings.TrimSpace(s), time.UTC)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
