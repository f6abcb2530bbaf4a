package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Misha2007/smart-city-event-map/internal/config"
	"github.com/Misha2007/smart-city-event-map/internal/filter"
	"github.com/Misha2007/smart-city-event-map/internal/handler"
	"github.com/Misha2007/smart-city-event-map/internal/mapview"
	"github.com/Misha2007/smart-city-event-map/internal/metrics"
	"github.com/Misha2007/smart-city-event-map/internal/middleware"
	"github.com/Misha2007/smart-city-event-map/internal/notification"
	"github.com/Misha2007/smart-city-event-map/internal/repository"
	"github.com/Misha2007/smart-city-event-map/internal/router"
	"github.com/Misha2007/smart-city-event-map/internal/scheduler"
	"github.com/Misha2007/smart-city-event-map/internal/service"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	appName       = "citymap"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	tracer     *sdktrace.TracerProvider
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if app.tracer, err = InitTracing(context.Background(), cfg.Tracing); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	if app.tracer != nil {
		app.log.LogAttrs(context.Background(), logger.InfoLevel, "tracing enabled",
			logger.String("otlp_addr", cfg.Tracing.OTLPAddr),
		)
	}

	if err = RunMigrations(cfg.Postgres.DSN()); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	app.log.Info("migrations applied successfully")

	if app.db, err = ConnectDB(context.Background(), cfg, log); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// ConnectDB opens the pool and pings the master.
func ConnectDB(ctx context.Context, cfg *config.Config, log logger.Logger) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", cfg.Postgres.Host),
		logger.Int("port", cfg.Postgres.Port),
		logger.String("database", cfg.Postgres.Database),
	)
	return db, nil
}

func RunMigrations(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Filter.Location()
	if err != nil {
		return err
	}

	eventRepo := repository.NewEventRepo(a.db)
	categoryRepo := repository.NewCategoryRepo(a.db)
	favoriteRepo := repository.NewFavoriteRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)
	profileRepo := repository.NewProfileRepo(a.db)

	announcer, err := notification.NewTelegramAnnouncer(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChannelID, a.log)
	if err != nil {
		return fmt.Errorf("init announcer: %w", err)
	}
	m := metrics.New()

	policy := filter.Policy{Bounded: a.cfg.Filter.BoundedWindows}
	eventService := service.NewEventService(eventRepo, announcer, policy, loc)
	categoryService := service.NewCategoryService(categoryRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, eventRepo, m)
	authService := service.NewAuthService(userRepo, sessionRepo, profileRepo, a.cfg.Auth.SessionTTL, a.log)
	profileService := service.NewProfileService(profileRepo)

	a.scheduler = scheduler.New(
		authService,
		a.cfg.Scheduler.Interval,
		a.log,
		scheduler.WithCatalogueGauges(eventService, m),
	)

	h := handler.NewHandler(
		eventService,
		categoryService,
		favoriteService,
		authService,
		profileService,
		mapOptions(a.cfg.Map),
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		authService,
		m.Handler(),
		a.log,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		m.Middleware(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func mapOptions(c config.MapConfig) mapview.Options {
	return mapview.Options{
		Center:     mapview.LatLng{Lat: c.CenterLat, Lng: c.CenterLng},
		Zoom:       c.Zoom,
		SelectZoom: c.SelectZoom,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("tracer shutdown: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "tracer provider flushed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
