package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

// buildListQuery turns q into the public list query, ordered by start date.
func buildListQuery(q domain.EventQuery) (string, []any, error) {
	b := psql.Select(eventColumns).From(eventFrom)

	switch q.CategorySlug {
	case "", domain.AllCategories:
	case domain.UncategorizedSlug:
		// events whose category row is gone read back as the placeholder
		b = b.Where(sq.Or{
			sq.Eq{"e.category_id": nil},
			sq.Eq{"c.slug": q.CategorySlug},
		})
	default:
		b = b.Where(sq.Eq{"c.slug": q.CategorySlug})
	}
	if q.Search != "" {
		p := containsPattern(q.Search)
		b = b.Where(sq.Or{
			sq.ILike{"e.title": p},
			sq.ILike{"e.description": p},
			sq.ILike{"e.location_name": p},
		})
	}
	if q.StartsFrom != nil {
		b = b.Where(sq.GtOrEq{"e.start_date": *q.StartsFrom})
	}
	if q.StartsBefore != nil {
		b = b.Where(sq.Lt{"e.start_date": *q.StartsBefore})
	}

	return b.OrderBy("e.start_date ASC", "e.id ASC").ToSql()
}

func (r *EventRepository) List(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	query, args, err := buildListQuery(q)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	res, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return res, nil
}

// ListAdmin returns every event, newest first.
func (r *EventRepository) ListAdmin(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM ` + eventFrom + `
			  ORDER BY e.created_at DESC, e.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list admin events: %w", err)
	}

	res, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return res, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM ` + eventFrom + `
			  WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("scan event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, rec domain.EventRecord) (domain.Event, error) {
	query := `INSERT INTO events (id, title, description, category_id, location_name, latitude, longitude,
			  		start_date, end_date, image_url, website_url, contact_info, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx, query,
		id, rec.Title, rec.Description, rec.CategoryID, rec.LocationName, rec.Latitude, rec.Longitude,
		rec.StartDate.UTC(), utcPtr(rec.EndDate), rec.ImageURL, rec.WebsiteURL, rec.ContactInfo, now,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.Event{}, domain.ErrCategoryNotFound
		}
		return domain.Event{}, fmt.Errorf("insert event: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *EventRepository) Update(ctx context.Context, id string, rec domain.EventRecord) (domain.Event, error) {
	query := `UPDATE events
			  SET title = $2, description = $3, category_id = $4, location_name = $5,
			      latitude = $6, longitude = $7, start_date = $8, end_date = $9,
			      image_url = $10, website_url = $11, contact_info = $12, updated_at = $13
			  WHERE id = $1`

	res, err := r.db.ExecContext(
		ctx, query,
		id, rec.Title, rec.Description, rec.CategoryID, rec.LocationName, rec.Latitude, rec.Longitude,
		rec.StartDate.UTC(), utcPtr(rec.EndDate), rec.ImageURL, rec.WebsiteURL, rec.ContactInfo, time.Now().UTC(),
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.Event{}, domain.ErrCategoryNotFound
		}
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Event{}, domain.ErrEventNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
