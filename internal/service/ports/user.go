package ports

import (
	"context"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

//go:generate mockery --name=UserRepo|SessionRepo|ProfileRepo --output=mocks --outpkg=mocks --with-expecter

type UserRepo interface {
	Create(ctx context.Context, email, passwordHash string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetRole(ctx context.Context, userID string) (domain.Role, error)
	SetRole(ctx context.Context, userID string, role domain.Role) error
}

type SessionRepo interface {
	Create(ctx context.Context, s domain.SessionRecord) error
	Get(ctx context.Context, tokenHash string) (domain.SessionRecord, error)
	Delete(ctx context.Context, tokenHash string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (domain.Profile, error)
	Upsert(ctx context.Context, userID string, in domain.ProfileInput) (domain.Profile, error)
}
