package ports

import (
	"context"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
)

//go:generate mockery --name=EventAnnouncer|FavoriteRecorder --output=mocks --outpkg=mocks --with-expecter

type EventAnnouncer interface {
	AnnounceEvent(ctx context.Context, event domain.Event)
}

// FavoriteRecorder counts favorite changes. Action is "add" or "remove".
type FavoriteRecorder interface {
	FavoriteChanged(action string)
}
