package ports

import (
	"context"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

//go:generate mockery --name=EventRepo|CategoryRepo|FavoriteRepo --output=mocks --outpkg=mocks --with-expecter

type EventRepo interface {
	List(ctx context.Context, q domain.EventQuery) ([]domain.Event, error)
	ListAdmin(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, rec domain.EventRecord) (domain.Event, error)
	Update(ctx context.Context, id string, rec domain.EventRecord) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type FavoriteRepo interface {
	Add(ctx context.Context, userID, eventID string) error
	Remove(ctx context.Context, userID, eventID string) error
	ListIDs(ctx context.Context, userID string) ([]string, error)
	ListEvents(ctx context.Context, userID string) ([]domain.Event, error)
}
