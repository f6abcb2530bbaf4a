package service

import (
	"context"
	"testing"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create_DerivesSlugAndColor(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	want := domain.CategoryInput{Name: "Food & Drink", Slug: "food-drink", Color: defaultCategoryColor}
	repo.EXPECT().Create(mock.Anything, want).Return(domain.Category{ID: "c1", Name: want.Name, Slug: want.Slug}, nil)

	c, err := svc.Create(context.Background(), domain.CategoryInput{Name: "  Food & Drink "})

	require.NoError(t, err)
	assert.Equal(t, "food-drink", c.Slug)
}

func TestCategoryService_Create_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   domain.CategoryInput
	}{
		{name: "empty name", in: domain.CategoryInput{Name: " "}},
		{name: "bad slug", in: domain.CategoryInput{Name: "Music", Slug: "Music!"}},
		{name: "reserved uncategorized", in: domain.CategoryInput{Name: "Other", Slug: domain.UncategorizedSlug}},
		{name: "reserved all", in: domain.CategoryInput{Name: "All", Slug: domain.AllCategories}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCategoryService(mocks.NewMockCategoryRepo(t))

			_, err := svc.Create(context.Background(), tt.in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCategoryService_Create_SlugTaken(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Category{}, domain.ErrSlugTaken)

	_, err := svc.Create(context.Background(), domain.CategoryInput{Name: "Music"})

	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestCategoryService_Update_BlankIconBecomesNil(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	blank := " "
	repo.EXPECT().Update(mock.Anything, "c1", mock.MatchedBy(func(in domain.CategoryInput) bool {
		return in.Icon == nil && in.Slug == "music"
	})).Return(domain.Category{ID: "c1"}, nil)

	_, err := svc.Update(context.Background(), "c1", domain.CategoryInput{Name: "Music", Icon: &blank, Color: "bg-pink-100"})

	assert.NoError(t, err)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().Delete(mock.Anything, "c1").Return(domain.ErrCategoryNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "c1"), domain.ErrCategoryNotFound)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "open-air-cinema", Slugify("Open-Air  Cinema!"))
	assert.Equal(t, "2025-expo", Slugify("  2025 Expo"))
	assert.Equal(t, "", Slugify("???"))
}
