package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s domain.SessionRecord) error {
	query := `INSERT INTO sessions (token_hash, user_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, s.TokenHash, s.UserID, s.ExpiresAt, s.CreatedAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, tokenHash string) (domain.SessionRecord, error) {
	query := `SELECT token_hash, user_id, expires_at, created_at
			  FROM sessions
			  WHERE token_hash = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tokenHash)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("get session: %w", err)
	}

	var s domain.SessionRecord
	if err = row.Scan(&s.TokenHash, &s.UserID, &s.ExpiresAt, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SessionRecord{}, domain.ErrSessionNotFound
		}
		return domain.SessionRecord{}, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes sessions that expired before now and reports how many.
func (r *SessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
