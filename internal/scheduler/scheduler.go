package scheduler

import (
	"context"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/wb-go/wbf/logger"
)

//go:generate mockery --name=sessionPurger|statsSource|statsSink --output=mocks --outpkg=mocks --with-expecter --exported

type sessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type statsSource interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type statsSink interface {
	SetCatalogue(stats domain.DashboardStats)
}

type Option func(*Scheduler)

// WithCatalogueGauges refreshes the catalogue gauges from src on every tick.
func WithCatalogueGauges(src statsSource, sink statsSink) Option {
	return func(s *Scheduler) {
		s.stats = src
		s.sink = sink
	}
}

// Scheduler runs the housekeeping jobs: expired session purge and, when
// configured, the catalogue gauge refresh. The first run happens on start.
type Scheduler struct {
	sessions sessionPurger
	stats    statsSource
	sink     statsSink
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionPurger,
	interval time.Duration,
	logger logger.Logger,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Bool("catalogue_gauges", s.stats != nil),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	s.purgeSessions(ctx)
	if s.stats != nil && s.sink != nil {
		s.refreshCatalogue(ctx)
	}
}

func (s *Scheduler) purgeSessions(ctx context.Context) {
	purged, err := s.sessions.PurgeExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("expired sessions purged",
			logger.Int64("count", purged),
		)
	}
}

// refreshCatalogue keeps the previous gauge values when the stats query fails.
func (s *Scheduler) refreshCatalogue(ctx context.Context) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh catalogue gauges",
			logger.String("error", err.Error()),
		)
		return
	}
	s.sink.SetCatalogue(stats)
}
