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

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.Profile, error) {
	query := `SELECT id, display_name, avatar_url, bio, updated_at
			  FROM profiles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err = row.Scan(&p.ID, &p.DisplayName, &p.AvatarURL, &p.Bio, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID string, in domain.ProfileInput) (domain.Profile, error) {
	query := `INSERT INTO profiles (id, display_name, avatar_url, bio, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (id) DO UPDATE
			  SET display_name = EXCLUDED.display_name,
			      avatar_url = EXCLUDED.avatar_url,
			      bio = EXCLUDED.bio,
			      updated_at = EXCLUDED.updated_at`

	p := domain.Profile{
		ID:          userID,
		DisplayName: in.DisplayName,
		AvatarURL:   in.AvatarURL,
		Bio:         in.Bio,
		UpdatedAt:   time.Now().UTC(),
	}
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.DisplayName, p.AvatarURL, p.Bio, p.UpdatedAt); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.Profile{}, domain.ErrUserNotFound
		}
		return domain.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return p, nil
}
