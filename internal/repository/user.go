package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (domain.User, error) {
	query := `INSERT INTO users (id, email, password_hash, created_at)
 			  VALUES ($1, $2, $3, $4)`

	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.CreatedAt); err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
    		  FROM users
    		  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
    		  FROM users
    		  WHERE lower(email) = lower($1)`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

// GetRole returns the user's role. A user without a role row is a plain user.
func (r *UserRepository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return "", fmt.Errorf("get role: %w", err)
	}

	var role domain.Role
	if err = row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RoleUser, nil
		}
		return "", fmt.Errorf("scan role: %w", err)
	}
	return role, nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID string, role domain.Role) error {
	query := `INSERT INTO user_roles (user_id, role)
			  VALUES ($1, $2)
			  ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`

	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}
