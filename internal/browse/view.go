// Package browse ties the public map page together: it fetches events, derives
// the visible set from the filters and keeps the map markers in step.
package browse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/favorites"
	"github.com/Misha2007/smart-city-event-map/internal/filter"
	"github.com/Misha2007/smart-city-event-map/internal/mapview"
)

//go:generate mockery --name=EventSource --output=mocks --outpkg=mocks --with-expecter

type EventSource interface {
	ListEvents(ctx context.Context, f domain.EventFilters) ([]domain.Event, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// ErrClosed is returned by operations on a closed view.
var ErrClosed = errors.New("view closed")

type Option func(*View)

func WithClock(now func() time.Time) Option {
	return func(v *View) { v.now = now }
}

func WithPolicy(p filter.Policy) Option {
	return func(v *View) { v.policy = p }
}

// View is safe for concurrent use; fetches that resolve after Close or after
// a newer Refresh are dropped.
type View struct {
	source  EventSource
	favs    *favorites.Reconciler
	markers *mapview.Synchronizer
	now     func() time.Time
	policy  filter.Policy

	mu         sync.Mutex
	generation uint64
	closed     bool
	filters    domain.EventFilters
	events     []domain.Event
	visible    []domain.Event
	categories []domain.Category
	selected   *domain.Event
	banner     error
}

func NewView(source EventSource, favs *favorites.Reconciler, mv *mapview.Synchronizer, opts ...Option) *View {
	v := &View{
		source:  source,
		favs:    favs,
		markers: mv,
		now:     time.Now,
		filters: domain.DefaultFilters(),
	}
	for _, opt := range opts {
		opt(v)
	}
	mv.OnSelect(func(e domain.Event) { _ = v.Select(e) })
	return v
}

// Refresh refetches the full event list and the categories. The server is
// asked for the unfiltered list; filtering happens locally.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	events, err := v.source.ListEvents(ctx, domain.DefaultFilters())
	if err != nil {
		return v.fail(gen, fmt.Errorf("fetch events: %w", err))
	}
	categories, err := v.source.ListCategories(ctx)
	if err != nil {
		return v.fail(gen, fmt.Errorf("fetch categories: %w", err))
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.generation {
		return nil
	}
	v.events = events
	v.categories = categories
	v.banner = nil
	return v.recomputeLocked()
}

func (v *View) fail(gen uint64, err error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.generation {
		return nil
	}
	v.banner = err
	return err
}

// SetFilters replaces the filters and recomputes the visible set.
func (v *View) SetFilters(f domain.EventFilters) error {
	if _, err := domain.ParseDateRange(string(f.DateRange)); err != nil {
		return err
	}
	if f.Category == "" {
		f.Category = domain.AllCategories
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	v.filters = f
	return v.recomputeLocked()
}

// Tick re-evaluates the date-range cut-off against the current time.
func (v *View) Tick() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	return v.recomputeLocked()
}

func (v *View) recomputeLocked() error {
	v.visible = v.policy.Apply(v.events, v.filters, v.now())
	return v.markers.Reconcile(v.visible)
}

// Select makes e the selected event and opens its popup.
func (v *View) Select(e domain.Event) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	if err := v.markers.Select(e); err != nil {
		return err
	}
	ev := e
	v.selected = &ev
	return nil
}

// SelectByID selects a visible event by id.
func (v *View) SelectByID(id string) error {
	v.mu.Lock()
	var found *domain.Event
	for i := range v.visible {
		if v.visible[i].ID == id {
			found = &v.visible[i]
			break
		}
	}
	v.mu.Unlock()

	if found == nil {
		return domain.ErrEventNotFound
	}
	return v.Select(*found)
}

func (v *View) Dismiss() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = nil
	v.markers.Dismiss()
}

// ToggleFavorite flips eventID for the signed-in user. Failures land in the
// error banner as well as being returned.
func (v *View) ToggleFavorite(ctx context.Context, eventID string) (bool, error) {
	on, err := v.favs.Toggle(ctx, eventID)
	if err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		v.mu.Lock()
		if !v.closed {
			v.banner = err
		}
		v.mu.Unlock()
	}
	return on, err
}

func (v *View) IsFavorite(eventID string) bool {
	return v.favs.Has(eventID)
}

func (v *View) Visible() []domain.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Event(nil), v.visible...)
}

func (v *View) Categories() []domain.Category {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Category(nil), v.categories...)
}

func (v *View) Filters() domain.EventFilters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

func (v *View) Selected() (domain.Event, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return domain.Event{}, false
	}
	return *v.selected, true
}

// Banner returns the last user-visible error, if any.
func (v *View) Banner() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.banner
}

// Close discards in-flight fetches and releases the map.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	v.generation++
	v.selected = nil
	v.markers.Release()
}
