// Package seed imports scraped event fixtures into the catalogue.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/editor"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/yaml.v3"
)

// Fixture is one scraped event. JSON files decode too, since YAML is a
// superset of JSON.
type Fixture struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Category     string   `yaml:"category"`
	LocationName string   `yaml:"location_name"`
	Latitude     *float64 `yaml:"latitude"`
	Longitude    *float64 `yaml:"longitude"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	ImageURL     string   `yaml:"image_url"`
	WebsiteURL   string   `yaml:"website_url"`
	ContactInfo  string   `yaml:"contact_info"`
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", editor.TimeLayout, time.DateOnly}

func Parse(r io.Reader) ([]Fixture, error) {
	var fixtures []Fixture
	if err := yaml.NewDecoder(r).Decode(&fixtures); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return fixtures, nil
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
}

type EventCreator interface {
	Create(ctx context.Context, rec domain.EventRecord) (domain.Event, error)
}

type Result struct {
	Created int
	Skipped int
}

type Importer struct {
	categories CategoryStore
	events     EventCreator
	loc        *time.Location
	logger     logger.Logger
}

// NewImporter reads zone-less timestamps in loc.
func NewImporter(categories CategoryStore, events EventCreator, loc *time.Location, log logger.Logger) *Importer {
	if loc == nil {
		loc = time.UTC
	}
	return &Importer{categories: categories, events: events, loc: loc, logger: log}
}

// Import creates an event per fixture. Unknown categories are created on the
// way; fixtures that fail validation are logged and skipped.
func (i *Importer) Import(ctx context.Context, fixtures []Fixture) (Result, error) {
	existing, err := i.categories.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list categories: %w", err)
	}
	byKey := make(map[string]domain.Category, 2*len(existing))
	for _, c := range existing {
		byKey[strings.ToLower(c.Slug)] = c
		byKey[strings.ToLower(c.Name)] = c
	}

	var res Result
	for n, f := range fixtures {
		category, err := i.category(ctx, byKey, f.Category)
		if err != nil {
			return res, err
		}

		rec, err := i.record(f, category)
		if err == nil {
			_, err = i.events.Create(ctx, rec)
		}
		if err != nil {
			if !errors.Is(err, domain.ErrValidation) {
				return res, fmt.Errorf("create event %q: %w", f.Title, err)
			}
			i.logger.Warn("skipping fixture",
				logger.Int("index", n),
				logger.String("title", f.Title),
				logger.String("error", err.Error()),
			)
			res.Skipped++
			continue
		}
		res.Created++
	}
	return res, nil
}

func (i *Importer) category(ctx context.Context, byKey map[string]domain.Category, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "General"
	}
	if c, ok := byKey[strings.ToLower(name)]; ok {
		return c, nil
	}

	c, err := i.categories.Create(ctx, domain.CategoryInput{Name: name})
	if err != nil {
		return domain.Category{}, fmt.Errorf("create category %q: %w", name, err)
	}
	byKey[strings.ToLower(c.Slug)] = c
	byKey[strings.ToLower(c.Name)] = c
	return c, nil
}

func (i *Importer) record(f Fixture, category domain.Category) (domain.EventRecord, error) {
	start, err := i.parseTime(f.StartDate)
	if err != nil {
		return domain.EventRecord{}, fmt.Errorf("%w: start_date %q", domain.ErrValidation, f.StartDate)
	}

	rec := domain.EventRecord{
		Title:        strings.TrimSpace(f.Title),
		Description:  optional(f.Description),
		CategoryID:   category.ID,
		LocationName: strings.TrimSpace(f.LocationName),
		Latitude:     editor.DefaultLatitude,
		Longitude:    editor.DefaultLongitude,
		StartDate:    start,
		ImageURL:     optional(f.ImageURL),
		WebsiteURL:   optional(f.WebsiteURL),
		ContactInfo:  optional(f.ContactInfo),
	}
	if f.Latitude != nil && f.Longitude != nil {
		rec.Latitude, rec.Longitude = *f.Latitude, *f.Longitude
	}
	if strings.TrimSpace(f.EndDate) != "" {
		end, err := i.parseTime(f.EndDate)
		if err != nil {
			return domain.EventRecord{}, fmt.Errorf("%w: end_date %q", domain.ErrValidation, f.EndDate)
		}
		rec.EndDate = &end
	}
	return rec, nil
}

func (i *Importer) parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, i.loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
