// Command seed loads scraped event fixtures (JSON or YAML) into the database.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/Misha2007/smart-city-event-map/internal/app"
	"github.com/Misha2007/smart-city-event-map/internal/config"
	"github.com/Misha2007/smart-city-event-map/internal/filter"
	"github.com/Misha2007/smart-city-event-map/internal/repository"
	"github.com/Misha2007/smart-city-event-map/internal/seed"
	"github.com/Misha2007/smart-city-event-map/internal/service"
	"github.com/wb-go/wbf/logger"
)

func main() {
	flag.String("config", "", "path to config file")
	file := flag.String("file", "data.json", "fixture file to import")
	migrate := flag.Bool("migrate", true, "apply migrations before importing")
	flag.Parse()

	cfg := config.MustLoad()

	lg, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	if *migrate {
		if err = app.RunMigrations(cfg.Postgres.DSN()); err != nil {
			log.Fatalf("migrations: %v", err)
		}
	}

	ctx := context.Background()
	db, err := app.ConnectDB(ctx, cfg, lg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Master.Close()

	loc, err := cfg.Filter.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open fixtures: %v", err)
	}
	defer f.Close()

	fixtures, err := seed.Parse(f)
	if err != nil {
		log.Fatalf("parse fixtures: %v", err)
	}

	categories := service.NewCategoryService(repository.NewCategoryRepo(db))
	events := service.NewEventService(repository.NewEventRepo(db), nil, filter.Policy{}, loc)

	res, err := seed.NewImporter(categories, events, loc, lg).Import(ctx, fixtures)
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	lg.LogAttrs(ctx, logger.InfoLevel, "fixtures imported",
		logger.String("file", *file),
		logger.Int("created", res.Created),
		logger.Int("skipped", res.Skipped),
	)
}
