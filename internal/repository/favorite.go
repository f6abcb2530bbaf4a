package repository

import (
	"context"
	"fmt"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FavoriteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFavoriteRepo(db *dbpg.DB) *FavoriteRepository {
	return &FavoriteRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

// Add is idempotent: the (user, event) pair is stored at most once.
func (r *FavoriteRepository) Add(ctx context.Context, userID, eventID string) error {
	query := `INSERT INTO user_favorites (user_id, event_id, created_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (user_id, event_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, eventID); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Remove is idempotent: removing an absent pair is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, eventID string) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND event_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, eventID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) ListIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT event_id
			  FROM user_favorites
			  WHERE user_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

// ListEvents returns the user's favorite events ordered by start date.
func (r *FavoriteRepository) ListEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM user_favorites f
			  JOIN events e ON e.id = f.event_id
			  LEFT JOIN categories c ON c.id = e.category_id
			  WHERE f.user_id = $1
			  ORDER BY e.start_date ASC, e.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite events: %w", err)
	}

	res, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return res, nil
}
