package cachedb

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/rwadex/rwa-dex-api/pkg/pgutil"
	mghelper "github.com/rwadex/rwa-dex-api/pkg/pgutil/migrations"
)

func TestCacheDBMigrations_ApplyAndRollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := mghelper.RunMigrations(ctx, migrator, "up"); err != nil {
		t.Fatalf("up failed: %v", err)
	}

	pgutil.AssertTableExists(t, db, "cache_entries")
	pgutil.AssertTableExists(t, db, "bun_migrations")
	pgutil.AssertIndexExists(t, db, "idx_cache_entries_expires_at")

	if err := mghelper.RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("down failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "cache_entries")

	if err := mghelper.RunMigrations(ctx, migrator, "bogus"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
