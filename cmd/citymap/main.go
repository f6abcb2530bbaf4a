package main

import (
	"flag"
	"log"

	"github.com/Misha2007/smart-city-event-map/internal/app"
	"github.com/Misha2007/smart-city-event-map/internal/config"
)

func main() {
	flag.String("config", "", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations and exit")
	flag.Parse()

	cfg := config.MustLoad()

	if *migrateOnly {
		if err := app.RunMigrations(cfg.Postgres.DSN()); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
