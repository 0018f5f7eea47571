package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/0xNexuz/Tempocash/pkg/config"
	"github.com/0xNexuz/Tempocash/pkg/migrations/simdb"
	"github.com/0xNexuz/Tempocash/pkg/pgutil"
	mghelper "github.com/0xNexuz/Tempocash/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("error creating logger: %s", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for the simulation database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, simdb.Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
