package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func readStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with the LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

const eventColumns = `e.id, e.title, e.description, e.location_name, e.latitude, e.longitude,
	e.start_date, e.end_date, e.image_url, e.website_url, e.contact_info, e.created_at, e.updated_at,
	c.id, c.name, c.slug, c.icon, c.color`

const eventFrom = `events e LEFT JOIN categories c ON c.id = e.category_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (domain.Event, error) {
	var (
		e                       domain.Event
		endDate                 sql.NullTime
		catID, catName, catSlug sql.NullString
		catIcon, catColor       sql.NullString
	)
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.LocationName, &e.Latitude, &e.Longitude,
		&e.StartDate, &endDate, &e.ImageURL, &e.WebsiteURL, &e.ContactInfo, &e.CreatedAt, &e.UpdatedAt,
		&catID, &catName, &catSlug, &catIcon, &catColor,
	); err != nil {
		return domain.Event{}, err
	}

	if endDate.Valid {
		t := endDate.Time
		e.EndDate = &t
	}
	if catID.Valid {
		e.Category = domain.Category{
			ID:    catID.String,
			Name:  catName.String,
			Slug:  catSlug.String,
			Color: catColor.String,
		}
		if catIcon.Valid {
			icon := catIcon.String
			e.Category.Icon = &icon
		}
	} else {
		e.Category = domain.Uncategorized()
	}
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	defer rows.Close()

	res := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
