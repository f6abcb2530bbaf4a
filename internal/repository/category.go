package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, slug, icon, color
			  FROM categories
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	query := `SELECT id, name, slug, icon, color
			  FROM categories
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("scan category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	query := `INSERT INTO categories (id, name, slug, icon, color)
			  VALUES ($1, $2, $3, $4, $5)`

	c := domain.Category{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Slug:  in.Slug,
		Icon:  in.Icon,
		Color: in.Color,
	}
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Slug, c.Icon, c.Color); err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.Category{}, domain.ErrSlugTaken
		}
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error) {
	query := `UPDATE categories
			  SET name = $2, slug = $3, icon = $4, color = $5
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, in.Name, in.Slug, in.Icon, in.Color)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.Category{}, domain.ErrSlugTaken
		}
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}

	return domain.Category{ID: id, Name: in.Name, Slug: in.Slug, Icon: in.Icon, Color: in.Color}, nil
}

// Delete removes the category; its events fall back to the placeholder.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
