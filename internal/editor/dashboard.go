package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

//go:generate mockery --name=Backend --output=mocks --outpkg=mocks --with-expecter

// Backend is the persistence surface the dashboard drives.
type Backend interface {
	ListAdminEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, rec domain.EventRecord) (domain.Event, error)
	UpdateEvent(ctx context.Context, id string, rec domain.EventRecord) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// ConfirmFunc asks the operator to approve a destructive action.
type ConfirmFunc func(e domain.Event) bool

// ErrNotConfirmed is returned by Delete when the operator declined.
var ErrNotConfirmed = errors.New("delete not confirmed")

// Dashboard holds the admin list and the form being edited. Every successful
// mutation refetches the list instead of patching it.
type Dashboard struct {
	backend Backend
	confirm ConfirmFunc
	now     func() time.Time

	mu      sync.Mutex
	events  []domain.Event
	form    FormData
	editing string
	open    bool
	err     error
}

func NewDashboard(backend Backend, confirm ConfirmFunc) *Dashboard {
	return &Dashboard{
		backend: backend,
		confirm: confirm,
		now:     time.Now,
	}
}

// Load fetches the admin list. On failure the previous list is kept and the
// error is also exposed through Err.
func (d *Dashboard) Load(ctx context.Context) error {
	events, err := d.backend.ListAdminEvents(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.err = fmt.Errorf("load events: %w", err)
		return d.err
	}
	d.events = events
	d.err = nil
	return nil
}

// New opens a blank form.
func (d *Dashboard) New() FormData {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form = NewForm()
	d.editing = ""
	d.open = true
	return d.form
}

// Edit opens the form for the listed event with the given id.
func (d *Dashboard) Edit(id string) (FormData, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, e := range d.events {
		if e.ID == id {
			d.form = ToFormState(e)
			d.editing = id
			d.open = true
			return d.form, nil
		}
	}
	return FormData{}, domain.ErrEventNotFound
}

// Cancel closes the form without saving.
func (d *Dashboard) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form = FormData{}
	d.editing = ""
	d.open = false
}

// Submit validates the form and creates or updates the event. A validation
// failure returns before any backend call and leaves the form open.
func (d *Dashboard) Submit(ctx context.Context, form FormData) error {
	rec, err := FromFormState(form)
	if err != nil {
		d.mu.Lock()
		d.form = form
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	id := d.editing
	d.mu.Unlock()

	if id == "" {
		_, err = d.backend.CreateEvent(ctx, rec)
	} else {
		_, err = d.backend.UpdateEvent(ctx, id, rec)
	}
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			// The row vanished under us; show what the backend has now.
			_ = d.Load(ctx)
		}
		d.setErr(fmt.Errorf("save event: %w", err))
		return err
	}

	d.Cancel()
	return d.Load(ctx)
}

// Delete removes the event after the operator confirms.
func (d *Dashboard) Delete(ctx context.Context, id string) error {
	e, ok := d.find(id)
	if !ok {
		return domain.ErrEventNotFound
	}
	if d.confirm == nil || !d.confirm(e) {
		return ErrNotConfirmed
	}

	if err := d.backend.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			_ = d.Load(ctx)
		}
		d.setErr(fmt.Errorf("delete event: %w", err))
		return err
	}
	return d.Load(ctx)
}

func (d *Dashboard) Events() []domain.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.Event, len(d.events))
	copy(out, d.events)
	return out
}

// Form returns the current form, the id being edited ("" for a new event)
// and whether the form is open.
func (d *Dashboard) Form() (FormData, string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form, d.editing, d.open
}

func (d *Dashboard) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

func (d *Dashboard) Stats() domain.DashboardStats {
	return ComputeStats(d.Events(), d.now())
}

func (d *Dashboard) find(id string) (domain.Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, e := range d.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

func (d *Dashboard) setErr(err error) {
	d.mu.Lock()
	d.err = err
	d.mu.Unlock()
}

// ComputeStats counts all events, the distinct categories in use and the
// events starting in the same calendar month as now.
func ComputeStats(events []domain.Event, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{TotalEvents: len(events)}

	seen := make(map[string]struct{})
	y, m, _ := now.Date()
	for _, e := range events {
		key := e.Category.Slug
		if !e.Category.IsPlaceholder() {
			key = e.Category.ID
		}
		seen[key] = struct{}{}

		ey, em, _ := e.StartDate.In(now.Location()).Date()
		if ey == y && em == m {
			stats.ThisMonth++
		}
	}
	stats.Categories = len(seen)
	return stats
}
