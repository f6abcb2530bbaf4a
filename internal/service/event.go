package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/editor"
	"github.com/Misha2007/smart-city-event-map/internal/filter"
	"github.com/Misha2007/smart-city-event-map/internal/service/ports"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type EventService struct {
	repo      ports.EventRepo
	announcer ports.EventAnnouncer
	policy    filter.Policy
	loc       *time.Location
	now       func() time.Time
}

// NewEventService resolves date ranges in loc (local midnight for "today").
// A nil announcer disables announcements.
func NewEventService(repo ports.EventRepo, announcer ports.EventAnnouncer, policy filter.Policy, loc *time.Location) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		repo:      repo,
		announcer: announcer,
		policy:    policy,
		loc:       loc,
		now:       time.Now,
	}
}

// Query resolves the filters into a server-side query, sharing the date-range
// policy with the client-side filter.
func (s *EventService) Query(f domain.EventFilters) domain.EventQuery {
	q := domain.EventQuery{
		CategorySlug: f.Category,
		Search:       strings.TrimSpace(f.Search),
	}
	if q.CategorySlug == domain.AllCategories {
		q.CategorySlug = ""
	}
	if w, ok := s.policy.Window(f.DateRange, s.now().In(s.loc)); ok {
		from := w.From
		q.StartsFrom = &from
		if !w.To.IsZero() {
			to := w.To
			q.StartsBefore = &to
		}
	}
	return q
}

func (s *EventService) List(ctx context.Context, f domain.EventFilters) ([]domain.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.List", trace.WithAttributes(
		attribute.String("category", f.Category),
		attribute.String("date_range", string(f.DateRange)),
	))
	defer span.End()

	if _, err := domain.ParseDateRange(string(f.DateRange)); err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, s.Query(f))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list events: %w", err)
	}
	span.SetAttributes(attribute.Int("count", len(events)))
	return events, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) ListAdmin(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admin events: %w", err)
	}
	return events, nil
}

func (s *EventService) Create(ctx context.Context, rec domain.EventRecord) (domain.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.Create")
	defer span.End()

	rec = editor.NormalizeRecord(rec)
	if err := validateRecord(rec); err != nil {
		return domain.Event{}, err
	}

	event, err := s.repo.Create(ctx, rec)
	if err != nil {
		span.RecordError(err)
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}

	if s.announcer != nil {
		go s.announcer.AnnounceEvent(context.WithoutCancel(ctx), event)
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, rec domain.EventRecord) (domain.Event, error) {
	ctx, span := tracer.Start(ctx, "EventService.Update", trace.WithAttributes(attribute.String("event_id", id)))
	defer span.End()

	rec = editor.NormalizeRecord(rec)
	if err := validateRecord(rec); err != nil {
		return domain.Event{}, err
	}

	event, err := s.repo.Update(ctx, id, rec)
	if err != nil {
		span.RecordError(err)
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// Stats summarises every event for the admin dashboard.
func (s *EventService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	events, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("list admin events: %w", err)
	}
	return editor.ComputeStats(events, s.now().In(s.loc)), nil
}

func validateRecord(rec domain.EventRecord) error {
	if err := editor.ValidateRecord(rec); err != nil {
		return err
	}
	if _, err := uuid.Parse(rec.CategoryID); err != nil {
		return fmt.Errorf("%w: category_id must be a uuid", domain.ErrValidation)
	}
	return nil
}
