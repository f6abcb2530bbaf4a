// Package filter derives the visible subset of an event list from the
// category, free-text and date-range filters.
package filter

import (
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

const (
	day         = 24 * time.Hour
	weekWindow  = 7 * day
	monthWindow = 30 * day
)

// Policy decides how a date range turns into a window on start_date.
//
// The zero Policy is the observed behaviour: a rolling lower bound only, so
// an event far in the future passes every range. Bounded additionally caps
// the window at the same distance ahead of now (end of today for "today").
type Policy struct {
	Bounded bool
}

// Window is a half-open interval [From, To) on start_date. A zero To means
// no upper bound.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if t.Before(w.From) {
		return false
	}
	return w.To.IsZero() || t.Before(w.To)
}

// Apply keeps the events that pass every filter under the observed policy.
// Input order is preserved.
func Apply(events []domain.Event, f domain.EventFilters, now time.Time) []domain.Event {
	return Policy{}.Apply(events, f, now)
}

// Match reports whether a single event passes f under the observed policy.
func Match(e domain.Event, f domain.EventFilters, now time.Time) bool {
	return Policy{}.Match(e, f, now)
}

// Cutoff returns the lower bound on start_date for r. The second result is
// false when r does not bound the list at all.
func Cutoff(r domain.DateRange, now time.Time) (time.Time, bool) {
	w, ok := Policy{}.Window(r, now)
	return w.From, ok
}

func (p Policy) Apply(events []domain.Event, f domain.EventFilters, now time.Time) []domain.Event {
	w, bounded := p.Window(f.DateRange, now)
	search := strings.ToLower(f.Search)

	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !matchCategory(e, f.Category) || !matchSearch(e, search) {
			continue
		}
		if bounded && !w.Contains(e.StartDate) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (p Policy) Match(e domain.Event, f domain.EventFilters, now time.Time) bool {
	if !matchCategory(e, f.Category) || !matchSearch(e, strings.ToLower(f.Search)) {
		return false
	}
	w, bounded := p.Window(f.DateRange, now)
	return !bounded || w.Contains(e.StartDate)
}

// Window resolves r against now. The second result is false for "all" and
// unknown ranges.
func (p Policy) Window(r domain.DateRange, now time.Time) (Window, bool) {
	var w Window
	switch r {
	case domain.DateRangeToday:
		y, m, d := now.Date()
		w.From = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		if p.Bounded {
			w.To = w.From.AddDate(0, 0, 1)
		}
	case domain.DateRangeWeek:
		w.From = now.Add(-weekWindow)
		if p.Bounded {
			w.To = now.Add(weekWindow)
		}
	case domain.DateRangeMonth:
		w.From = now.Add(-monthWindow)
		if p.Bounded {
			w.To = now.Add(monthWindow)
		}
	default:
		return Window{}, false
	}
	return w, true
}

func matchCategory(e domain.Event, category string) bool {
	return category == "" || category == domain.AllCategories || e.Category.Slug == category
}

func matchSearch(e domain.Event, lowered string) bool {
	return lowered == "" || strings.Contains(strings.ToLower(e.Title), lowered)
}
