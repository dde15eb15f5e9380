package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"

	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/migrations/cachedb"
	"github.com/rwadex/rwa-dex-api/pkg/pgutil"
	mghelper "github.com/rwadex/rwa-dex-api/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}
	if cfg.Cache.Driver != config.CacheDriverPostgres {
		log.Printf("cache driver is %q; migrations only apply to the postgres backend\n", cfg.Cache.Driver)
	}

	ctx := context.Background()

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Cache.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for cache database (%s)...\n", cfg.Cache.Database.Database)

	migrator := migrate.NewMigrator(db, cachedb.Migrations)

	// Run migrations with args
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
