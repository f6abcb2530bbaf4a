package service

import (
	"context"
	"fmt"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/service/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type FavoriteService struct {
	repo     ports.FavoriteRepo
	events   ports.EventRepo
	recorder ports.FavoriteRecorder
}

// NewFavoriteService accepts a nil recorder.
func NewFavoriteService(repo ports.FavoriteRepo, events ports.EventRepo, recorder ports.FavoriteRecorder) *FavoriteService {
	return &FavoriteService{
		repo:     repo,
		events:   events,
		recorder: recorder,
	}
}

func (s *FavoriteService) ListIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.repo.ListIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	return ids, nil
}

func (s *FavoriteService) ListEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite events: %w", err)
	}
	return events, nil
}

// Add stores the pair. Adding an existing favorite succeeds.
func (s *FavoriteService) Add(ctx context.Context, userID, eventID string) error {
	ctx, span := tracer.Start(ctx, "FavoriteService.Add", trace.WithAttributes(attribute.String("event_id", eventID)))
	defer span.End()

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return err
	}
	if err := s.repo.Add(ctx, userID, eventID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("add favorite: %w", err)
	}
	s.record("add")
	return nil
}

// Remove deletes the pair. Removing an absent favorite succeeds.
func (s *FavoriteService) Remove(ctx context.Context, userID, eventID string) error {
	ctx, span := tracer.Start(ctx, "FavoriteService.Remove", trace.WithAttributes(attribute.String("event_id", eventID)))
	defer span.End()

	if err := s.repo.Remove(ctx, userID, eventID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("remove favorite: %w", err)
	}
	s.record("remove")
	return nil
}

func (s *FavoriteService) record(action string) {
	if s.recorder != nil {
		s.recorder.FavoriteChanged(action)
	}
}
