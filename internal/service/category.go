package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/service/ports"
)

const defaultCategoryColor = "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-200"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CategoryService struct {
	repo ports.CategoryRepo
}

func NewCategoryService(repo ports.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	in, err := normalizeCategory(in)
	if err != nil {
		return domain.Category{}, err
	}

	c, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error) {
	in, err := normalizeCategory(in)
	if err != nil {
		return domain.Category{}, err
	}

	c, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes the category. Its events are kept and read back as
// uncategorized.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func normalizeCategory(in domain.CategoryInput) (domain.CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}
	if !slugPattern.MatchString(in.Slug) {
		return in, fmt.Errorf("%w: slug must be lowercase letters, digits and dashes", domain.ErrValidation)
	}
	if in.Slug == domain.UncategorizedSlug || in.Slug == domain.AllCategories {
		return in, fmt.Errorf("%w: slug %q is reserved", domain.ErrValidation, in.Slug)
	}

	if strings.TrimSpace(in.Color) == "" {
		in.Color = defaultCategoryColor
	}
	if in.Icon != nil && strings.TrimSpace(*in.Icon) == "" {
		in.Icon = nil
	}
	return in, nil
}

// Slugify lowercases name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}
